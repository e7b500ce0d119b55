package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/master/position"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/calendar"
	"github.com/jackc/pgx/v5"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	positionRepo position.PositionRepository
	now          func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	positionRepo position.PositionRepository,
	now func() time.Time,
) employee.EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
		now:          now,
	}
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Resolve the position so the name snapshot is taken at assignment time
	pos, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, position.ErrPositionNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve position: %w", err)
	}

	emailExists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	token := strings.TrimSpace(req.RFIDToken)
	tokenExists, err := s.employeeRepo.ExistsByRFIDToken(ctx, token, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check rfid token: %w", err)
	}
	if tokenExists {
		return employee.EmployeeResponse{}, employee.ErrRFIDTokenExists
	}

	entity := employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		PositionID:   pos.ID,
		PositionName: pos.Name,
		RFIDToken:    token,
		BaseSalary:   req.BaseSalary,
		HireDate:     req.HireDate,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(created), nil
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(entity), nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	return responses, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	pos, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, position.ErrPositionNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve position: %w", err)
	}

	emailExists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, &existing.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	token := strings.TrimSpace(req.RFIDToken)
	tokenExists, err := s.employeeRepo.ExistsByRFIDToken(ctx, token, &existing.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check rfid token: %w", err)
	}
	if tokenExists {
		return employee.EmployeeResponse{}, employee.ErrRFIDTokenExists
	}

	existing.FullName = req.FullName
	existing.Email = req.Email
	existing.PositionID = pos.ID
	existing.PositionName = pos.Name
	existing.RFIDToken = token
	existing.BaseSalary = req.BaseSalary
	existing.HireDate = req.HireDate

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeResponse(updated), nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeServiceImpl) ListTenure(ctx context.Context) ([]employee.TenureResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]employee.TenureResponse, 0, len(employees))
	for _, e := range employees {
		tenure := computeTenure(e.HireDate, now)
		responses = append(responses, employee.TenureResponse{
			EmployeeID: e.ID,
			FullName:   e.FullName,
			HireDate:   e.HireDate,
			Status:     string(tenure.Status),
			Years:      tenure.Years,
			Months:     tenure.Months,
			Days:       tenure.Days,
		})
	}

	return responses, nil
}

// computeTenure classifies a hire date and measures elapsed calendar time.
// Missing or unparseable dates are reported as unavailable rather than
// failing the whole listing, future dates as invalid.
func computeTenure(hireDate *string, now time.Time) employee.Tenure {
	if hireDate == nil || strings.TrimSpace(*hireDate) == "" {
		return employee.Tenure{Status: employee.TenureUnavailable}
	}

	hired, err := time.Parse("2006-01-02", strings.TrimSpace(*hireDate))
	if err != nil {
		return employee.Tenure{Status: employee.TenureUnavailable}
	}

	years, months, days, err := calendar.Diff(hired, now)
	if err != nil {
		// Diff only fails when the hire date is after now
		return employee.Tenure{Status: employee.TenureInvalid}
	}

	return employee.Tenure{
		Status: employee.TenureOK,
		Years:  years,
		Months: months,
		Days:   days,
	}
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Email:        e.Email,
		PositionID:   e.PositionID,
		PositionName: e.PositionName,
		RFIDToken:    e.RFIDToken,
		BaseSalary:   e.BaseSalary,
		HireDate:     e.HireDate,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}
