package response

import (
	"errors"
	"net/http"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/domain/auth"
	"github.com/staffloop/hrm-backend-go/internal/domain/employee"
	"github.com/staffloop/hrm-backend-go/internal/domain/leave"
	"github.com/staffloop/hrm-backend-go/internal/domain/payroll"
	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Timeout gets its own
// status so clients know the failure is retryable; every other mapped error
// is not.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Datastore timeout, the only retryable failure
	case errors.Is(err, database.ErrTimeout):
		GatewayTimeout(w, "Datastore did not respond in time")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrEmailAlreadyUsed):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "An open attendance session already exists")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, "No open attendance session to close")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		ValidationError(w, map[string]string{"end_date": "end_date must not be before start_date"})
	case errors.Is(err, leave.ErrInvalidLeaveType):
		ValidationError(w, map[string]string{"leave_type": "unsupported leave type"})

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound), errors.Is(err, payroll.ErrNoRecords):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrNotCalculated):
		Conflict(w, "Payroll record has not been calculated")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		ValidationError(w, map[string]string{"pay_period": "pay_period must be in YYYY-MM form"})
	case errors.Is(err, payroll.ErrInvalidDailyRate):
		CalculationError(w, "Daily rate could not be derived from base salary")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
