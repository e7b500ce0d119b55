package attendance

import "errors"

// Attendance domain errors
var (
	// Scan errors
	ErrEmptyToken   = errors.New("rfid token is empty")
	ErrUnknownToken = errors.New("rfid token does not match any employee")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
