package advance

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	EmployeeID     string          `json:"employee_id"`
	Amount         decimal.Decimal `json:"amount"`
	DeductionMonth string          `json:"deduction_month"` // "YYYY-MM"
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if _, err := period.Parse(r.DeductionMonth); err != nil {
		errs = append(errs, validator.ValidationError{Field: "deduction_month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	Amount         decimal.Decimal `json:"amount"`
	RequestDate    string          `json:"request_date"`
	DeductionMonth period.Period   `json:"deduction_month"`
	Status         string          `json:"status"`
}
