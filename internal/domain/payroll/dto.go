package payroll

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// BaseInputs are the payroll amounts that originate outside the deduction
// engine: employee master data and the attendance subsystem. When omitted
// from a run request they are loaded from those collaborators.
type BaseInputs struct {
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	BonusAmount        decimal.Decimal `json:"bonus_amount"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`

	EmployeeInsurance decimal.Decimal `json:"employee_insurance"`
	LeaveDeduction    decimal.Decimal `json:"leave_deduction"`
	PenaltyAmount     decimal.Decimal `json:"penalty_amount"`

	EmployerSocialInsurance decimal.Decimal `json:"employer_social_insurance"`
	HealthInsurance         decimal.Decimal `json:"health_insurance"`
	IncomeTax               decimal.Decimal `json:"income_tax"`
}

type RunRequest struct {
	EmployeeID  string      `json:"employee_id"`
	PeriodMonth int         `json:"period_month"`
	PeriodYear  int         `json:"period_year"`
	Base        *BaseInputs `json:"base,omitempty"`
}

func (r *RunRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`

	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	BonusAmount        decimal.Decimal `json:"bonus_amount"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`

	EmployeeInsurance decimal.Decimal `json:"employee_insurance"`
	LoanPayment       decimal.Decimal `json:"loan_payment"`
	AdvanceAmount     decimal.Decimal `json:"advance_amount"`
	MobileBill        decimal.Decimal `json:"mobile_bill"`
	LeaveDeduction    decimal.Decimal `json:"leave_deduction"`
	PenaltyAmount     decimal.Decimal `json:"penalty_amount"`

	Gross           decimal.Decimal `json:"gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`

	EmployerSocialInsurance decimal.Decimal `json:"employer_social_insurance"`
	HealthInsurance         decimal.Decimal `json:"health_insurance"`
	IncomeTax               decimal.Decimal `json:"income_tax"`
}

// DeductionSummary is the per-employee/month pre-run view of current
// obligations, for the UI.
type DeductionSummary struct {
	EmployeeID      string          `json:"employee_id"`
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	ActiveLoans     int             `json:"active_loans"`
	LoanPayment     decimal.Decimal `json:"loan_payment"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	MobileBill      decimal.Decimal `json:"mobile_bill"`
	TotalObligation decimal.Decimal `json:"total_obligation"`
}
