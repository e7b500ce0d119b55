package attendance

import (
	"time"
)

type EventType string

const (
	EventCheckIn  EventType = "check-in"
	EventCheckOut EventType = "check-out"
)

// Attendance is a single scan event. EmployeeName is a snapshot of the
// employee's name at scan time so reports survive later renames.
type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Type         EventType
	Timestamp    time.Time
	CreatedAt    time.Time
}
