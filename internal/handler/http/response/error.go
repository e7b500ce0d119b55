package response

import (
	"errors"
	"net/http"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/auth"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/master/position"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/payroll"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/user"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/calendar"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmptyToken):
		ValidationError(w, map[string]string{"token": "token is required"})
	case errors.Is(err, attendance.ErrUnknownToken):
		NotFound(w, "RFID token does not match any employee")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrRFIDTokenExists):
		Conflict(w, "RFID token already registered")

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionNameExists):
		Conflict(w, "Position with this name already exists")
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position is still assigned to employees")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrReportNotFound):
		NotFound(w, "Payroll report not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, calendar.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
