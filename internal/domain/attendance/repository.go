package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// ListByRange returns events with start <= Timestamp <= end, oldest first.
	ListByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	Update(ctx context.Context, att Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error
}
