package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/dashboard"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/master/position"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	scans []dashboard.LatestScanItem
	total int
}

func (r *fakeDashboardRepo) GetLatestScans(ctx context.Context, limit int) ([]dashboard.LatestScanItem, error) {
	if len(r.scans) > limit {
		return r.scans[:limit], nil
	}
	return r.scans, nil
}

func (r *fakeDashboardRepo) CountScans(ctx context.Context) (int, error) {
	return r.total, nil
}

type fakeAttendanceRepo struct {
	events []attendance.Attendance
	nextID int
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.nextID++
	att.ID = fmt.Sprintf("att-%d", r.nextID)
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

type countOnlyEmployeeRepo struct{ count int }

func (r *countOnlyEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (r *countOnlyEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, pgx.ErrNoRows
}
func (r *countOnlyEmployeeRepo) GetByRFIDToken(ctx context.Context, token string) (employee.Employee, error) {
	return employee.Employee{}, pgx.ErrNoRows
}
func (r *countOnlyEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (r *countOnlyEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (r *countOnlyEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *countOnlyEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	return false, nil
}
func (r *countOnlyEmployeeRepo) ExistsByRFIDToken(ctx context.Context, token string, excludeID *string) (bool, error) {
	return false, nil
}
func (r *countOnlyEmployeeRepo) ExistsByPositionID(ctx context.Context, positionID string) (bool, error) {
	return false, nil
}
func (r *countOnlyEmployeeRepo) Count(ctx context.Context) (int, error) { return r.count, nil }

type countOnlyPositionRepo struct{ count int }

func (r *countOnlyPositionRepo) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	return pos, nil
}
func (r *countOnlyPositionRepo) GetByID(ctx context.Context, id string) (position.Position, error) {
	return position.Position{}, pgx.ErrNoRows
}
func (r *countOnlyPositionRepo) List(ctx context.Context) ([]position.Position, error) {
	return nil, nil
}
func (r *countOnlyPositionRepo) Update(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error) {
	return position.Position{}, pgx.ErrNoRows
}
func (r *countOnlyPositionRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *countOnlyPositionRepo) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	return false, nil
}
func (r *countOnlyPositionRepo) Count(ctx context.Context) (int, error) { return r.count, nil }

func TestGetDashboard_CombinesCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2024, time.March, 4, 14, 0, 0, 0, time.UTC)
	dashRepo := &fakeDashboardRepo{
		scans: []dashboard.LatestScanItem{
			{EmployeeName: "Andi Wijaya", Type: "check-in", Timestamp: "2024-03-04T08:15:00Z"},
		},
		total: 3,
	}
	attRepo := &fakeAttendanceRepo{events: []attendance.Attendance{
		{ID: "att-1", Timestamp: time.Date(2024, time.March, 4, 8, 15, 0, 0, time.UTC)},
		{ID: "att-2", Timestamp: time.Date(2024, time.March, 4, 8, 20, 0, 0, time.UTC)},
		{ID: "att-3", Timestamp: time.Date(2024, time.March, 3, 8, 0, 0, 0, time.UTC)}, // yesterday
	}}

	svc := NewDashboardService(
		dashRepo,
		attRepo,
		&countOnlyEmployeeRepo{count: 7},
		&countOnlyPositionRepo{count: 3},
		func() time.Time { return now },
		time.UTC,
	)

	resp, err := svc.GetDashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, resp.TotalEmployees)
	assert.Equal(t, 3, resp.TotalPositions)
	assert.Equal(t, 2, resp.ScansToday)
	require.Len(t, resp.LatestScans, 1)
	assert.Equal(t, "Andi Wijaya", resp.LatestScans[0].EmployeeName)
}

// The all-time total keeps counting yesterday's scans while the today figure
// resets each day.
func TestGetDashboard_TotalAttendancesIsAllTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2024, time.March, 4, 14, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{events: []attendance.Attendance{
		{ID: "att-1", Timestamp: time.Date(2024, time.February, 12, 8, 0, 0, 0, time.UTC)},
		{ID: "att-2", Timestamp: time.Date(2024, time.March, 3, 8, 0, 0, 0, time.UTC)},
		{ID: "att-3", Timestamp: time.Date(2024, time.March, 4, 8, 15, 0, 0, time.UTC)},
	}}

	svc := NewDashboardService(
		&fakeDashboardRepo{total: 3},
		attRepo,
		&countOnlyEmployeeRepo{count: 1},
		&countOnlyPositionRepo{count: 1},
		func() time.Time { return now },
		time.UTC,
	)

	resp, err := svc.GetDashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalAttendances)
	assert.Equal(t, 1, resp.ScansToday)
}

func TestGetDashboard_EmptyState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewDashboardService(
		&fakeDashboardRepo{},
		&fakeAttendanceRepo{},
		&countOnlyEmployeeRepo{},
		&countOnlyPositionRepo{},
		nil,
		time.UTC,
	)

	resp, err := svc.GetDashboard(ctx)

	require.NoError(t, err)
	assert.Zero(t, resp.TotalEmployees)
	assert.Zero(t, resp.TotalAttendances)
	assert.Zero(t, resp.ScansToday)
	assert.NotNil(t, resp.LatestScans)
	assert.Empty(t, resp.LatestScans)
}
