package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAttendanceRepo struct {
	events []attendance.Attendance
	nextID int
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.nextID++
	att.ID = fmt.Sprintf("att-%d", r.nextID)
	att.CreatedAt = time.Now()
	r.events = append(r.events, att)
	return att, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, evt := range r.events {
		if evt.ID == id {
			return evt, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (r *fakeAttendanceRepo) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, evt := range r.events {
		if !evt.Timestamp.Before(start) && !evt.Timestamp.After(end) {
			out = append(out, evt)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	events, _ := r.ListByRange(ctx, start, end)
	return len(events), nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for i, evt := range r.events {
		if evt.ID == att.ID {
			r.events[i] = att
			return att, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for i, evt := range r.events {
		if evt.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeEmployeeLookup struct {
	byToken map[string]employee.Employee
}

func (r *fakeEmployeeLookup) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeLookup) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, pgx.ErrNoRows
}

func (r *fakeEmployeeLookup) GetByRFIDToken(ctx context.Context, token string) (employee.Employee, error) {
	emp, ok := r.byToken[token]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (r *fakeEmployeeLookup) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeLookup) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeLookup) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeEmployeeLookup) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	return false, nil
}

func (r *fakeEmployeeLookup) ExistsByRFIDToken(ctx context.Context, token string, excludeID *string) (bool, error) {
	return false, nil
}

func (r *fakeEmployeeLookup) ExistsByPositionID(ctx context.Context, positionID string) (bool, error) {
	return false, nil
}

func (r *fakeEmployeeLookup) Count(ctx context.Context) (int, error) {
	return len(r.byToken), nil
}

func scanTestService(attRepo *fakeAttendanceRepo, now func() time.Time) attendance.AttendanceService {
	lookup := &fakeEmployeeLookup{byToken: map[string]employee.Employee{
		"04A1B2C3": {ID: "emp-1", FullName: "Andi Wijaya", RFIDToken: "04A1B2C3"},
	}}
	return NewAttendanceService(attRepo, lookup, now, time.UTC)
}

// ===== SCAN TESTS =====

func TestRecordScan_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	scanTime := time.Date(2024, time.March, 4, 8, 15, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{}
	svc := scanTestService(attRepo, func() time.Time { return scanTime })

	resp, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "04A1B2C3"})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Andi Wijaya", resp.EmployeeName)
	assert.Equal(t, string(attendance.EventCheckIn), resp.Type)
	assert.Equal(t, scanTime.Format(time.RFC3339), resp.Timestamp)
}

func TestRecordScan_TrimsToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	attRepo := &fakeAttendanceRepo{}
	svc := scanTestService(attRepo, nil)

	resp, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "  04A1B2C3  "})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestRecordScan_EmptyToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := scanTestService(&fakeAttendanceRepo{}, nil)

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: raw})
		assert.ErrorIs(t, err, attendance.ErrEmptyToken, "input %q", raw)
	}
}

func TestRecordScan_UnknownToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := scanTestService(&fakeAttendanceRepo{}, nil)

	_, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "DEADBEEF"})

	assert.ErrorIs(t, err, attendance.ErrUnknownToken)
}

func TestRecordScan_SameDayScansCreateDistinctRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	attRepo := &fakeAttendanceRepo{}
	svc := scanTestService(attRepo, nil)

	first, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "04A1B2C3"})
	require.NoError(t, err)
	second, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "04A1B2C3"})
	require.NoError(t, err)

	// No dedup: every scan lands as its own record
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, attRepo.events, 2)
}

func TestListAttendance_FiltersByRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	attRepo := &fakeAttendanceRepo{}
	day := func(d int) func() time.Time {
		return func() time.Time {
			return time.Date(2024, time.March, d, 9, 0, 0, 0, time.UTC)
		}
	}

	for _, d := range []int{1, 5, 20} {
		svc := scanTestService(attRepo, day(d))
		_, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "04A1B2C3"})
		require.NoError(t, err)
	}

	svc := scanTestService(attRepo, nil)
	resp, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestListAttendance_RejectsReversedRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := scanTestService(&fakeAttendanceRepo{}, nil)

	_, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-01",
	})

	assert.Error(t, err)
}

func TestUpdateAttendance_CorrectsTypeAndTimestamp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	attRepo := &fakeAttendanceRepo{}
	svc := scanTestService(attRepo, nil)

	created, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "04A1B2C3"})
	require.NoError(t, err)

	updated, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:        created.ID,
		Type:      string(attendance.EventCheckOut),
		Timestamp: "2024-03-04T17:05:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.EventCheckOut), updated.Type)
	assert.Equal(t, "2024-03-04T17:05:00Z", updated.Timestamp)
	// Employee identity stays as recorded
	assert.Equal(t, created.EmployeeID, updated.EmployeeID)
	assert.Equal(t, created.EmployeeName, updated.EmployeeName)
}

func TestUpdateAttendance_RejectsBadType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := scanTestService(&fakeAttendanceRepo{}, nil)

	_, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:        "att-1",
		Type:      "lunch",
		Timestamp: "2024-03-04T12:00:00Z",
	})

	assert.Error(t, err)
}

func TestUpdateAttendance_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := scanTestService(&fakeAttendanceRepo{}, nil)

	_, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:        "att-missing",
		Type:      string(attendance.EventCheckIn),
		Timestamp: "2024-03-04T08:00:00Z",
	})

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestDeleteAttendance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	attRepo := &fakeAttendanceRepo{}
	svc := scanTestService(attRepo, nil)

	created, err := svc.RecordScan(ctx, attendance.ScanRequest{Token: "04A1B2C3"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(ctx, created.ID))
	assert.Empty(t, attRepo.events)

	err = svc.DeleteAttendance(ctx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
