package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the persisted result of one payroll run for one employee and
// period. Exactly one entry exists per (employee, month, year); re-runs
// overwrite it.
type Entry struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowance     decimal.Decimal
	BonusAmount        decimal.Decimal
	OvertimePay        decimal.Decimal

	EmployeeInsurance decimal.Decimal
	LoanPayment       decimal.Decimal
	AdvanceAmount     decimal.Decimal
	MobileBill        decimal.Decimal
	LeaveDeduction    decimal.Decimal
	PenaltyAmount     decimal.Decimal

	Gross           decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	// Employer-side contributions, reported but never subtracted from net.
	EmployerSocialInsurance decimal.Decimal
	HealthInsurance         decimal.Decimal
	IncomeTax               decimal.Decimal

	// Linkage to the one-shot obligations this run consumed, so a re-run
	// can tell they were already transitioned.
	AdvanceID    *string
	MobileBillID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// TotalAllowances sums the fixed allowance fields.
func (e Entry) TotalAllowances() decimal.Decimal {
	return e.HousingAllowance.Add(e.TransportAllowance).Add(e.OtherAllowance)
}

// TotalEarnings is the display figure: stored gross plus bonus. The stored
// gross field itself never includes the bonus.
func (e Entry) TotalEarnings() decimal.Decimal {
	return e.Gross.Add(e.BonusAmount)
}

// AttendanceDeductions carries the attendance-derived amounts for one
// employee and period: the leave deduction and violation penalties.
type AttendanceDeductions struct {
	EmployeeID     string
	LeaveDeduction decimal.Decimal
	PenaltyAmount  decimal.Decimal
}
