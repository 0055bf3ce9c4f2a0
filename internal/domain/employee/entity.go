package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the read-only master data slice the deduction engine needs:
// identity, base salary, the fixed allowance fields, and the statutory
// amounts configured per employee.
type Employee struct {
	ID                 string
	Code               string
	Name               string
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowance     decimal.Decimal

	EmployeeInsurance       decimal.Decimal
	EmployerSocialInsurance decimal.Decimal
	HealthInsurance         decimal.Decimal
	IncomeTax               decimal.Decimal

	HireDate  time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalAllowances sums the fixed allowance fields.
func (e Employee) TotalAllowances() decimal.Decimal {
	return e.HousingAllowance.Add(e.TransportAllowance).Add(e.OtherAllowance)
}
