package employee

import (
	"time"
)

type Employee struct {
	ID           string
	FullName     string
	Email        string
	PositionID   string
	PositionName string // snapshot of the position name at assignment time
	RFIDToken    string
	BaseSalary   int64
	HireDate     *string // "YYYY-MM-DD", nil when never recorded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TenureStatus tells whether a tenure could be computed from the hire date.
type TenureStatus string

const (
	TenureOK          TenureStatus = "ok"
	TenureUnavailable TenureStatus = "unavailable" // hire date missing or malformed
	TenureInvalid     TenureStatus = "invalid"     // hire date is in the future
)

// Tenure is the elapsed calendar time since an employee's hire date.
// Years, Months and Days are only meaningful when Status is TenureOK.
type Tenure struct {
	Status TenureStatus
	Years  int
	Months int
	Days   int
}
