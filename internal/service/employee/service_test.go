package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/master/position"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.nextID++
	emp.ID = fmt.Sprintf("emp-%d", r.nextID)
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByRFIDToken(ctx context.Context, token string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.RFIDToken == token {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for i := 1; i <= r.nextID; i++ {
		if emp, ok := r.employees[fmt.Sprintf("emp-%d", i)]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	emp.UpdatedAt = time.Now()
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	for _, emp := range r.employees {
		if excludeID != nil && emp.ID == *excludeID {
			continue
		}
		if emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) ExistsByRFIDToken(ctx context.Context, token string, excludeID *string) (bool, error) {
	for _, emp := range r.employees {
		if excludeID != nil && emp.ID == *excludeID {
			continue
		}
		if emp.RFIDToken == token {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) ExistsByPositionID(ctx context.Context, positionID string) (bool, error) {
	for _, emp := range r.employees {
		if emp.PositionID == positionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) Count(ctx context.Context) (int, error) {
	return len(r.employees), nil
}

type fakePositionRepo struct {
	positions map[string]position.Position
}

func newFakePositionRepo(positions ...position.Position) *fakePositionRepo {
	repo := &fakePositionRepo{positions: make(map[string]position.Position)}
	for _, p := range positions {
		repo.positions[p.ID] = p
	}
	return repo
}

func (r *fakePositionRepo) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	r.positions[pos.ID] = pos
	return pos, nil
}

func (r *fakePositionRepo) GetByID(ctx context.Context, id string) (position.Position, error) {
	pos, ok := r.positions[id]
	if !ok {
		return position.Position{}, pgx.ErrNoRows
	}
	return pos, nil
}

func (r *fakePositionRepo) List(ctx context.Context) ([]position.Position, error) {
	out := make([]position.Position, 0, len(r.positions))
	for _, p := range r.positions {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePositionRepo) Update(ctx context.Context, req position.UpdatePositionRequest) (position.Position, error) {
	pos, ok := r.positions[req.ID]
	if !ok {
		return position.Position{}, pgx.ErrNoRows
	}
	pos.Name = req.Name
	r.positions[req.ID] = pos
	return pos, nil
}

func (r *fakePositionRepo) Delete(ctx context.Context, id string) error {
	delete(r.positions, id)
	return nil
}

func (r *fakePositionRepo) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	for _, p := range r.positions {
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePositionRepo) Count(ctx context.Context) (int, error) {
	return len(r.positions), nil
}

func strPtr(s string) *string { return &s }

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(empRepo *fakeEmployeeRepo, posRepo *fakePositionRepo) employee.EmployeeService {
	return NewEmployeeService(empRepo, posRepo, fixedNow)
}

// ===== EMPLOYEE SERVICE TESTS =====

func TestEmployeeService_Create_SnapshotsPositionName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	posRepo := newFakePositionRepo(position.Position{ID: "pos-1", Name: "Barista"})
	empRepo := newFakeEmployeeRepo()
	svc := newTestService(empRepo, posRepo)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Andi Wijaya",
		Email:      "andi@example.com",
		PositionID: "pos-1",
		RFIDToken:  "04A1B2C3",
		BaseSalary: 2_200_000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Barista", created.PositionName)
}

func TestEmployeeService_Create_UnknownPosition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeEmployeeRepo(), newFakePositionRepo())

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Andi Wijaya",
		Email:      "andi@example.com",
		PositionID: "missing",
		RFIDToken:  "04A1B2C3",
	})

	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}

func TestEmployeeService_Create_DuplicateRFIDToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	posRepo := newFakePositionRepo(position.Position{ID: "pos-1", Name: "Barista"})
	empRepo := newFakeEmployeeRepo()
	svc := newTestService(empRepo, posRepo)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Andi Wijaya",
		Email:      "andi@example.com",
		PositionID: "pos-1",
		RFIDToken:  "04A1B2C3",
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Budi Santoso",
		Email:      "budi@example.com",
		PositionID: "pos-1",
		RFIDToken:  "04A1B2C3",
	})

	assert.ErrorIs(t, err, employee.ErrRFIDTokenExists)
}

func TestEmployeeService_Update_RefreshesSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	posRepo := newFakePositionRepo(
		position.Position{ID: "pos-1", Name: "Barista"},
		position.Position{ID: "pos-2", Name: "Head Barista"},
	)
	empRepo := newFakeEmployeeRepo()
	svc := newTestService(empRepo, posRepo)

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Andi Wijaya",
		Email:      "andi@example.com",
		PositionID: "pos-1",
		RFIDToken:  "04A1B2C3",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		FullName:   "Andi Wijaya",
		Email:      "andi@example.com",
		PositionID: "pos-2",
		RFIDToken:  "04A1B2C3",
		BaseSalary: 2_500_000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Head Barista", updated.PositionName)
	assert.Equal(t, int64(2_500_000), updated.BaseSalary)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeEmployeeRepo(), newFakePositionRepo())

	err := svc.DeleteEmployee(ctx, "missing")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== TENURE TESTS =====

func TestComputeTenure_OK(t *testing.T) {
	t.Parallel()

	// Hired 2022-03-10, measured at 2024-06-15: 2y 3m 5d
	tenure := computeTenure(strPtr("2022-03-10"), fixedNow())

	assert.Equal(t, employee.TenureOK, tenure.Status)
	assert.Equal(t, 2, tenure.Years)
	assert.Equal(t, 3, tenure.Months)
	assert.Equal(t, 5, tenure.Days)
}

func TestComputeTenure_MissingHireDate(t *testing.T) {
	t.Parallel()

	tenure := computeTenure(nil, fixedNow())

	assert.Equal(t, employee.TenureUnavailable, tenure.Status)
}

func TestComputeTenure_MalformedHireDate(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"10/03/2022", "yesterday", "2022-13-40", ""} {
		tenure := computeTenure(strPtr(raw), fixedNow())
		assert.Equal(t, employee.TenureUnavailable, tenure.Status, "input %q", raw)
	}
}

func TestComputeTenure_FutureHireDate(t *testing.T) {
	t.Parallel()

	tenure := computeTenure(strPtr("2030-01-01"), fixedNow())

	assert.Equal(t, employee.TenureInvalid, tenure.Status)
}

func TestEmployeeService_ListTenure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	posRepo := newFakePositionRepo(position.Position{ID: "pos-1", Name: "Barista"})
	empRepo := newFakeEmployeeRepo()
	svc := newTestService(empRepo, posRepo)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Andi Wijaya",
		Email:      "andi@example.com",
		PositionID: "pos-1",
		RFIDToken:  "04A1B2C3",
		HireDate:   strPtr("2023-06-15"),
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "Budi Santoso",
		Email:      "budi@example.com",
		PositionID: "pos-1",
		RFIDToken:  "04D4E5F6",
	})
	require.NoError(t, err)

	tenures, err := svc.ListTenure(ctx)

	require.NoError(t, err)
	require.Len(t, tenures, 2)
	assert.Equal(t, string(employee.TenureOK), tenures[0].Status)
	assert.Equal(t, 1, tenures[0].Years)
	assert.Equal(t, 0, tenures[0].Months)
	assert.Equal(t, 0, tenures[0].Days)
	assert.Equal(t, string(employee.TenureUnavailable), tenures[1].Status)
}
