package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
	loc            *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	now func() time.Time,
	loc *time.Location,
) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            now,
		loc:            loc,
	}
}

// RecordScan turns a raw RFID read into a stored attendance event. The scan
// timestamp is taken from the server clock, never from the reader. A second
// scan on the same day simply creates another record.
func (s *attendanceServiceImpl) RecordScan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return attendance.ScanResponse{}, attendance.ErrEmptyToken
	}

	emp, err := s.employeeRepo.GetByRFIDToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ScanResponse{}, attendance.ErrUnknownToken
		}
		return attendance.ScanResponse{}, fmt.Errorf("failed to resolve rfid token: %w", err)
	}

	entity := attendance.Attendance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Type:         attendance.EventCheckIn,
		Timestamp:    s.now(),
	}

	created, err := s.attendanceRepo.Create(ctx, entity)
	if err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to store scan: %w", err)
	}

	return attendance.ScanResponse{
		ID:           created.ID,
		EmployeeID:   created.EmployeeID,
		EmployeeName: created.EmployeeName,
		Type:         string(created.Type),
		Timestamp:    created.Timestamp.Format(time.RFC3339),
	}, nil
}

func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	startDate, _ := validator.IsValidDate(filter.StartDate)
	endDate, _ := validator.IsValidDate(filter.EndDate)

	// Widen the date pair to a full-day range in the configured timezone
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, s.loc)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, s.loc).
		AddDate(0, 0, 1).Add(-time.Millisecond)

	events, err := s.attendanceRepo.ListByRange(ctx, start, end)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(events))
	for _, evt := range events {
		responses = append(responses, toAttendanceResponse(evt))
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		Total:       len(responses),
	}, nil
}

func (s *attendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	evt, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(evt), nil
}

// UpdateAttendance lets an admin correct a stored event's type or timestamp.
// Employee identity and name snapshot stay as recorded.
func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, err
	}

	timestamp, _ := validator.IsValidDateTime(req.Timestamp)
	existing.Type = attendance.EventType(req.Type)
	existing.Timestamp = timestamp

	updated, err := s.attendanceRepo.Update(ctx, existing)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toAttendanceResponse(updated), nil
}

func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return err
	}

	return s.attendanceRepo.Delete(ctx, id)
}

func toAttendanceResponse(evt attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           evt.ID,
		EmployeeID:   evt.EmployeeID,
		EmployeeName: evt.EmployeeName,
		Type:         string(evt.Type),
		Timestamp:    evt.Timestamp.Format(time.RFC3339),
	}
}
