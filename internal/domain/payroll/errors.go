package payroll

import "errors"

var (
	ErrEntryNotFound = errors.New("payroll entry not found")
	ErrInvalidPeriod = errors.New("invalid payroll period")
	ErrNoBasicSalary = errors.New("employee has no basic salary configured")
)
