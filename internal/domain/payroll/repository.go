package payroll

import "context"

type PayrollRepository interface {
	// UpsertEntry inserts the entry or overwrites the existing one for the
	// same (employee, month, year).
	UpsertEntry(ctx context.Context, e Entry) (Entry, error)
	GetEntryByID(ctx context.Context, id string) (Entry, error)
	GetEntryByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Entry, error)
	ListEntriesByPeriod(ctx context.Context, month, year int) ([]Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	// GetAttendanceDeductions aggregates the attendance subsystem's
	// leave-deduction and penalty amounts for one employee and period.
	GetAttendanceDeductions(ctx context.Context, employeeID string, month, year int) (AttendanceDeductions, error)
}
