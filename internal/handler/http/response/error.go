package response

import (
	"errors"
	"net/http"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/advance"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/mobilebill"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/payroll"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/training"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/uniform"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrLoanCompleted):
		Conflict(w, "Loan is already completed")
	case errors.Is(err, loan.ErrInvalidCalculation):
		BadRequest(w, "Invalid loan calculation", nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Salary advance not found")
	case errors.Is(err, advance.ErrInvalidTransition):
		Conflict(w, "Advance status transition not allowed")
	case errors.Is(err, advance.ErrAdvanceExistsForMonth):
		Conflict(w, "An advance already exists for this deduction month")

	// Mobile bill domain errors
	case errors.Is(err, mobilebill.ErrBillNotFound):
		NotFound(w, "Mobile bill not found")
	case errors.Is(err, mobilebill.ErrBillAlreadyDeducted):
		Conflict(w, "Mobile bill is already deducted")

	// Uniform domain errors
	case errors.Is(err, uniform.ErrIssuanceNotFound):
		NotFound(w, "Uniform issuance not found")

	// Training domain errors
	case errors.Is(err, training.ErrCourseNotFound):
		NotFound(w, "Training course not found")
	case errors.Is(err, training.ErrCourseAlreadyTaken):
		Conflict(w, "Training course is already marked as taken")
	case errors.Is(err, training.ErrDebtNotFound):
		NotFound(w, "Training debt not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNoBasicSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
