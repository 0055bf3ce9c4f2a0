package loan

import (
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// LoanStatus enum
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
)

// CalculationMethod enum
type CalculationMethod string

const (
	// CalculationAuto derives the monthly payment from a requested number of
	// installments.
	CalculationAuto CalculationMethod = "auto"
	// CalculationManual derives the installment count from a requested
	// monthly payment.
	CalculationManual CalculationMethod = "manual"
)

// Loan is an employee loan amortized over monthly installments.
type Loan struct {
	ID                string
	EmployeeID        string
	Amount            decimal.Decimal
	InstallmentsCount int
	MonthlyPayment    decimal.Decimal
	PaidInstallments  int
	PaidAmount        decimal.Decimal
	RemainingAmount   decimal.Decimal
	StartMonth        period.Period
	Status            LoanStatus
	CalculationMethod CalculationMethod
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsComplete reports whether every installment has been recorded.
func (l Loan) IsComplete() bool {
	return l.PaidInstallments >= l.InstallmentsCount
}

// NextInstallmentAmount is what the next recorded payment will actually add:
// a full monthly payment, except on the final installment where only the
// true remainder is charged so PaidAmount never exceeds Amount.
func (l Loan) NextInstallmentAmount() decimal.Decimal {
	if l.IsComplete() {
		return decimal.Zero
	}
	remainder := l.Amount.Sub(l.PaidAmount)
	if l.PaidInstallments+1 == l.InstallmentsCount || remainder.LessThan(l.MonthlyPayment) {
		if remainder.IsNegative() {
			return decimal.Zero
		}
		return remainder
	}
	return l.MonthlyPayment
}

// InstallmentStatus enum for schedule projections.
type InstallmentStatus string

const (
	InstallmentPaid     InstallmentStatus = "paid"
	InstallmentCurrent  InstallmentStatus = "current"
	InstallmentUpcoming InstallmentStatus = "upcoming"
)

// InstallmentEntry is one row of the projected amortization schedule.
type InstallmentEntry struct {
	Number         int
	PeriodLabel    period.Period
	Amount         decimal.Decimal
	CumulativePaid decimal.Decimal
	Remaining      decimal.Decimal
	Status         InstallmentStatus
}
