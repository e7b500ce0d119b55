package payroll

import (
	"time"
)

// PayrollLineItem - Per-employee result inside a report. Name, Position and
// BaseSalary are snapshots taken at generation time.
type PayrollLineItem struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	BaseSalary   int64  `json:"base_salary"`
	AttendedDays int    `json:"attended_days"`
	FinalPay     int64  `json:"final_pay"`
}

// PayrollReport - Generated payroll result for one month. EmployeeSalaries is
// stored as a JSONB document. Several reports may exist for the same period;
// regeneration appends rather than replaces.
type PayrollReport struct {
	ID               string
	PeriodMonth      int
	PeriodYear       int
	EmployeeSalaries []PayrollLineItem
	GeneratedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
