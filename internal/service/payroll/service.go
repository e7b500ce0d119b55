package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/payroll"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/calendar"
	"github.com/jackc/pgx/v5"
)

type payrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	countEvent     attendance.EventPredicate
	now            func() time.Time
	loc            *time.Location
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	now func() time.Time,
	loc *time.Location,
) payroll.PayrollService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &payrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		countEvent:     attendance.CountAllEvents,
		now:            now,
		loc:            loc,
	}
}

// GeneratePayroll builds a report for one month: aggregate that month's scan
// events per employee, prorate each base salary by attended days, and store
// the result as a self-contained snapshot. Generating the same period twice
// produces two independent reports.
func (s *payrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	start, end := calendar.PeriodBounds(req.Year, time.Month(req.Month), s.loc)

	events, err := s.attendanceRepo.ListByRange(ctx, start, end)
	if err != nil {
		return payroll.PayrollReportResponse{}, fmt.Errorf("failed to load attendance events: %w", err)
	}

	attendedDays := attendance.CountByEmployee(events, start, end, s.countEvent)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.PayrollReportResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	// One line item per employee, in roster order. Employees with no scans
	// appear with zero attended days and zero pay.
	items := make([]payroll.PayrollLineItem, 0, len(employees))
	for _, emp := range employees {
		days := attendedDays[emp.ID]
		items = append(items, payroll.PayrollLineItem{
			EmployeeID:   emp.ID,
			Name:         emp.FullName,
			Position:     emp.PositionName,
			BaseSalary:   emp.BaseSalary,
			AttendedDays: days,
			FinalPay:     payroll.ComputeFinalPay(emp.BaseSalary, days),
		})
	}

	report := payroll.PayrollReport{
		PeriodMonth:      req.Month,
		PeriodYear:       req.Year,
		EmployeeSalaries: items,
		GeneratedAt:      s.now(),
	}

	created, err := s.payrollRepo.Create(ctx, report)
	if err != nil {
		return payroll.PayrollReportResponse{}, fmt.Errorf("failed to store payroll report: %w", err)
	}

	return toReportResponse(created), nil
}

func (s *payrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollReportResponse, error) {
	report, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollReportResponse{}, payroll.ErrReportNotFound
		}
		return payroll.PayrollReportResponse{}, err
	}

	return toReportResponse(report), nil
}

func (s *payrollServiceImpl) ListPayroll(ctx context.Context) (payroll.ListPayrollResponse, error) {
	reports, err := s.payrollRepo.List(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	responses := make([]payroll.PayrollReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, toReportResponse(r))
	}

	return payroll.ListPayrollResponse{
		Reports: responses,
		Total:   len(responses),
	}, nil
}

// UpdatePayroll replaces a report's line items wholesale. The caller sends
// the full corrected list; nothing is merged.
func (s *payrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollReportResponse{}, err
	}

	items := make([]payroll.PayrollLineItem, 0, len(req.EmployeeSalaries))
	for _, item := range req.EmployeeSalaries {
		items = append(items, payroll.PayrollLineItem{
			EmployeeID:   item.EmployeeID,
			Name:         item.Name,
			Position:     item.Position,
			BaseSalary:   item.BaseSalary,
			AttendedDays: item.AttendedDays,
			FinalPay:     item.FinalPay,
		})
	}

	updated, err := s.payrollRepo.UpdateLineItems(ctx, req.ID, items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollReportResponse{}, payroll.ErrReportNotFound
		}
		return payroll.PayrollReportResponse{}, err
	}

	return toReportResponse(updated), nil
}

func (s *payrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrReportNotFound
		}
		return err
	}

	return s.payrollRepo.Delete(ctx, id)
}

func toReportResponse(r payroll.PayrollReport) payroll.PayrollReportResponse {
	return payroll.PayrollReportResponse{
		ID:               r.ID,
		Month:            r.PeriodMonth,
		Year:             r.PeriodYear,
		EmployeeSalaries: r.EmployeeSalaries,
		GeneratedAt:      r.GeneratedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
