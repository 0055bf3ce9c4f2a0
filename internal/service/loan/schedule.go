package loan

import (
	"iter"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
)

// InstallmentSchedule projects the loan's full amortization schedule as a
// lazy, restartable sequence of exactly InstallmentsCount entries. Ranging
// over it again replays it from installment one.
func InstallmentSchedule(l loan.Loan) iter.Seq[loan.InstallmentEntry] {
	return func(yield func(loan.InstallmentEntry) bool) {
		for n := 1; n <= l.InstallmentsCount; n++ {
			scheduled := l.Amount.Sub(l.MonthlyPayment.Mul(decimal.NewFromInt(int64(n))))

			cumulative := l.MonthlyPayment.Mul(decimal.NewFromInt(int64(n)))
			if cumulative.GreaterThan(l.Amount) {
				cumulative = l.Amount
			}
			remaining := scheduled
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}

			amount := l.MonthlyPayment
			if n == l.InstallmentsCount {
				amount = FinalInstallment(l.Amount, l.MonthlyPayment, l.InstallmentsCount)
			}

			status := loan.InstallmentUpcoming
			switch {
			case n <= l.PaidInstallments:
				status = loan.InstallmentPaid
			case n == l.PaidInstallments+1:
				status = loan.InstallmentCurrent
			}

			entry := loan.InstallmentEntry{
				Number:         n,
				PeriodLabel:    l.StartMonth.AddMonths(n - 1),
				Amount:         amount,
				CumulativePaid: cumulative,
				Remaining:      remaining,
				Status:         status,
			}
			if !yield(entry) {
				return
			}
		}
	}
}
