package employee

import (
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	PositionID string  `json:"position_id"`
	RFIDToken  string  `json:"rfid_token"`
	BaseSalary int64   `json:"base_salary"`
	HireDate   *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id is required",
		})
	}

	if validator.IsEmpty(r.RFIDToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "rfid_token",
			Message: "rfid_token is required",
		})
	}

	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.HireDate != nil && !validator.IsEmpty(*r.HireDate) {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"` // From URL param
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	PositionID string  `json:"position_id"`
	RFIDToken  string  `json:"rfid_token"`
	BaseSalary int64   `json:"base_salary"`
	HireDate   *string `json:"hire_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	create := CreateEmployeeRequest{
		FullName:   r.FullName,
		Email:      r.Email,
		PositionID: r.PositionID,
		RFIDToken:  r.RFIDToken,
		BaseSalary: r.BaseSalary,
		HireDate:   r.HireDate,
	}
	if err := create.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	PositionID   string  `json:"position_id"`
	PositionName string  `json:"position_name"`
	RFIDToken    string  `json:"rfid_token"`
	BaseSalary   int64   `json:"base_salary"`
	HireDate     *string `json:"hire_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type TenureResponse struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	HireDate   *string `json:"hire_date,omitempty"`
	Status     string  `json:"status"`
	Years      int     `json:"years"`
	Months     int     `json:"months"`
	Days       int     `json:"days"`
}
