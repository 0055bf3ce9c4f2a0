package loan

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	EmployeeID        string           `json:"employee_id"`
	Amount            decimal.Decimal  `json:"amount"`
	CalculationMethod string           `json:"calculation_method"` // "auto" or "manual"
	InstallmentsCount int              `json:"installments_count,omitempty"`
	MonthlyPayment    *decimal.Decimal `json:"monthly_payment,omitempty"`
	StartMonth        string           `json:"start_month"` // "YYYY-MM"
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	switch CalculationMethod(r.CalculationMethod) {
	case CalculationAuto:
		if r.InstallmentsCount <= 0 {
			errs = append(errs, validator.ValidationError{Field: "installments_count", Message: "must be positive"})
		}
	case CalculationManual:
		if r.MonthlyPayment == nil || !r.MonthlyPayment.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "monthly_payment", Message: "must be positive"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "must be 'auto' or 'manual'"})
	}
	if _, err := period.Parse(r.StartMonth); err != nil {
		errs = append(errs, validator.ValidationError{Field: "start_month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EditLoanRequest struct {
	ID                string
	Amount            decimal.Decimal  `json:"amount"`
	CalculationMethod string           `json:"calculation_method"`
	InstallmentsCount int              `json:"installments_count,omitempty"`
	MonthlyPayment    *decimal.Decimal `json:"monthly_payment,omitempty"`
}

func (r *EditLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	switch CalculationMethod(r.CalculationMethod) {
	case CalculationAuto:
		if r.InstallmentsCount <= 0 {
			errs = append(errs, validator.ValidationError{Field: "installments_count", Message: "must be positive"})
		}
	case CalculationManual:
		if r.MonthlyPayment == nil || !r.MonthlyPayment.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "monthly_payment", Message: "must be positive"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "must be 'auto' or 'manual'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	Amount            decimal.Decimal `json:"amount"`
	InstallmentsCount int             `json:"installments_count"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	PaidInstallments  int             `json:"paid_installments"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	StartMonth        period.Period   `json:"start_month"`
	Status            string          `json:"status"`
	CalculationMethod string          `json:"calculation_method"`
}

type InstallmentEntryResponse struct {
	Number         int             `json:"number"`
	PeriodLabel    period.Period   `json:"period"`
	Amount         decimal.Decimal `json:"amount"`
	CumulativePaid decimal.Decimal `json:"cumulative_paid"`
	Remaining      decimal.Decimal `json:"remaining"`
	Status         string          `json:"status"`
}
