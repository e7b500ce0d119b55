package attendance

import (
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/calendar"
)

// EventPredicate selects which scan events count toward an aggregate.
type EventPredicate func(Attendance) bool

// CountAllEvents counts every scan regardless of type. With the reader
// hardware only ever producing check-ins, one scan equals one attended day.
func CountAllEvents(Attendance) bool { return true }

// CheckInsOnly counts only check-in events.
func CheckInsOnly(att Attendance) bool { return att.Type == EventCheckIn }

// CountByEmployee tallies matching events per employee ID over the inclusive
// [start, end] window. Employees with no matching events are absent from the
// result.
func CountByEmployee(events []Attendance, start, end time.Time, match EventPredicate) map[string]int {
	counts := make(map[string]int)
	for _, evt := range events {
		if !calendar.WithinRange(evt.Timestamp, start, end) {
			continue
		}
		if match(evt) {
			counts[evt.EmployeeID]++
		}
	}
	return counts
}
