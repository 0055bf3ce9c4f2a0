package loan

import (
	"testing"
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleLoan(amount string, count, paid int, monthly string) loan.Loan {
	return loan.Loan{
		ID:                "loan-1",
		EmployeeID:        "emp-1",
		Amount:            dec(amount),
		InstallmentsCount: count,
		MonthlyPayment:    dec(monthly),
		PaidInstallments:  paid,
		StartMonth:        period.Period{Year: 2026, Month: time.January},
	}
}

func collect(l loan.Loan) []loan.InstallmentEntry {
	var entries []loan.InstallmentEntry
	for e := range InstallmentSchedule(l) {
		entries = append(entries, e)
	}
	return entries
}

func TestInstallmentSchedule_Length(t *testing.T) {
	entries := collect(scheduleLoan("1200", 12, 0, "100"))
	require.Len(t, entries, 12)
	assert.Equal(t, 1, entries[0].Number)
	assert.Equal(t, 12, entries[11].Number)
}

func TestInstallmentSchedule_CumulativeAndRemaining(t *testing.T) {
	l := scheduleLoan("1000", 4, 0, "300")
	entries := collect(l)
	require.Len(t, entries, 4)

	for i, e := range entries {
		n := decimal.NewFromInt(int64(i + 1))
		wantCumulative := decimal.Min(l.MonthlyPayment.Mul(n), l.Amount)
		wantRemaining := decimal.Max(l.Amount.Sub(l.MonthlyPayment.Mul(n)), decimal.Zero)
		assert.True(t, e.CumulativePaid.Equal(wantCumulative),
			"entry %d cumulative = %s, want %s", e.Number, e.CumulativePaid, wantCumulative)
		assert.True(t, e.Remaining.Equal(wantRemaining),
			"entry %d remaining = %s, want %s", e.Number, e.Remaining, wantRemaining)
	}

	// the 4th true installment is the remainder, not a full payment
	assert.True(t, entries[3].Amount.Equal(dec("100")),
		"final installment = %s, want 100", entries[3].Amount)
	assert.True(t, entries[3].Remaining.IsZero())
}

func TestInstallmentSchedule_StatusPartition(t *testing.T) {
	entries := collect(scheduleLoan("1200", 12, 5, "100"))

	var current int
	for _, e := range entries {
		switch {
		case e.Number <= 5:
			assert.Equal(t, loan.InstallmentPaid, e.Status, "entry %d", e.Number)
		case e.Number == 6:
			assert.Equal(t, loan.InstallmentCurrent, e.Status, "entry %d", e.Number)
		default:
			assert.Equal(t, loan.InstallmentUpcoming, e.Status, "entry %d", e.Number)
		}
		if e.Status == loan.InstallmentCurrent {
			current++
		}
	}
	assert.Equal(t, 1, current, "exactly one current installment")
}

func TestInstallmentSchedule_NoCurrentWhenComplete(t *testing.T) {
	entries := collect(scheduleLoan("1200", 12, 12, "100"))
	for _, e := range entries {
		assert.Equal(t, loan.InstallmentPaid, e.Status, "entry %d", e.Number)
	}
}

func TestInstallmentSchedule_PeriodLabels(t *testing.T) {
	entries := collect(scheduleLoan("300", 3, 0, "100"))
	require.Len(t, entries, 3)
	assert.Equal(t, "2026-01", entries[0].PeriodLabel.String())
	assert.Equal(t, "2026-02", entries[1].PeriodLabel.String())
	assert.Equal(t, "2026-03", entries[2].PeriodLabel.String())
}

func TestInstallmentSchedule_Restartable(t *testing.T) {
	l := scheduleLoan("1200", 12, 3, "100")
	seq := InstallmentSchedule(l)

	// partial consumption, then a full replay from installment one
	count := 0
	for range seq {
		count++
		if count == 4 {
			break
		}
	}

	first := 0
	for e := range seq {
		first++
		if first == 1 {
			assert.Equal(t, 1, e.Number, "restarted sequence begins at installment 1")
		}
	}
	assert.Equal(t, 12, first)
}
