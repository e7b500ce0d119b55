package payroll

import (
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LineItemRequest struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	BaseSalary   int64  `json:"base_salary"`
	AttendedDays int    `json:"attended_days"`
	FinalPay     int64  `json:"final_pay"`
}

// UpdatePayrollRequest replaces a report's line items wholesale.
type UpdatePayrollRequest struct {
	ID               string            `json:"-"` // From URL param
	EmployeeSalaries []LineItemRequest `json:"employee_salaries"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.EmployeeSalaries == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_salaries",
			Message: "employee_salaries is required",
		})
	}

	for _, item := range r.EmployeeSalaries {
		if validator.IsEmpty(item.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_salaries",
				Message: "employee_id is required on every line item",
			})
			break
		}
		if item.AttendedDays < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_salaries",
				Message: "attended_days must not be negative",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollReportResponse struct {
	ID               string            `json:"id"`
	Month            int               `json:"month"`
	Year             int               `json:"year"`
	EmployeeSalaries []PayrollLineItem `json:"employee_salaries"`
	GeneratedAt      time.Time         `json:"generated_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type ListPayrollResponse struct {
	Reports []PayrollReportResponse `json:"reports"`
	Total   int                     `json:"total"`
}
