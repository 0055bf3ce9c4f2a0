package payroll

import "context"

type PayrollService interface {
	// Run produces and persists the payroll entry for one employee and
	// period, consuming the employee's current obligations. Re-running for
	// the same period overwrites the entry without double-deducting.
	Run(ctx context.Context, req RunRequest) (EntryResponse, error)
	GetEntry(ctx context.Context, id string) (EntryResponse, error)
	GetEntryByPeriod(ctx context.Context, employeeID string, month, year int) (EntryResponse, error)
	ListEntriesByPeriod(ctx context.Context, month, year int) ([]EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
	// DeductionsForMonth is the pre-run projection of the employee's
	// current obligations for a period.
	DeductionsForMonth(ctx context.Context, employeeID string, month, year int) (DeductionSummary, error)
}
