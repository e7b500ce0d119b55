package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordScan resolves an RFID token to an employee and stores a scan event
	RecordScan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	// ListAttendance retrieves scan events within a date range, oldest first
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single scan event by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// UpdateAttendance corrects a stored scan event's type or timestamp
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a scan event
	DeleteAttendance(ctx context.Context, id string) error
}
