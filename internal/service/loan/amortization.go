package loan

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Plan is the amortization outcome for a loan amount: how many monthly
// installments, and how much each scheduled one is.
type Plan struct {
	InstallmentsCount int
	MonthlyPayment    decimal.Decimal
}

// PlanLoan computes the amortization plan.
//
// Auto mode splits the amount evenly over the requested installment count;
// the monthly payment keeps full decimal precision so the ledger does not
// accumulate rounding drift. Manual mode takes the requested monthly payment
// and derives the count as ceil(amount / monthly); the true final
// installment is then smaller than the monthly payment (FinalInstallment).
func PlanLoan(amount decimal.Decimal, method loan.CalculationMethod, installments int, monthly decimal.Decimal) (Plan, error) {
	var errs validator.ValidationErrors

	if !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	switch method {
	case loan.CalculationAuto:
		if installments <= 0 {
			errs = append(errs, validator.ValidationError{Field: "installments_count", Message: "must be positive"})
		}
	case loan.CalculationManual:
		if !monthly.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "monthly_payment", Message: "must be positive"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "must be 'auto' or 'manual'"})
	}

	if len(errs) > 0 {
		return Plan{}, errs
	}

	switch method {
	case loan.CalculationAuto:
		return Plan{
			InstallmentsCount: installments,
			MonthlyPayment:    amount.Div(decimal.NewFromInt(int64(installments))),
		}, nil
	default: // manual
		count := int(amount.Div(monthly).Ceil().IntPart())
		return Plan{
			InstallmentsCount: count,
			MonthlyPayment:    monthly,
		}, nil
	}
}

// FinalInstallment is the true amount of installment n of n: the remainder
// after n-1 full monthly payments, never negative.
func FinalInstallment(amount, monthly decimal.Decimal, installments int) decimal.Decimal {
	paidBefore := monthly.Mul(decimal.NewFromInt(int64(installments - 1)))
	final := amount.Sub(paidBefore)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
