package mobilebill

import (
	"context"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type BillRepository interface {
	// Upsert inserts the bill, or, when a bill already exists for the same
	// (employee, deduction month), replaces its amount, batch id and upload
	// date. Returns the stored bill and whether a new row was inserted.
	Upsert(ctx context.Context, b Bill) (Bill, bool, error)
	GetByID(ctx context.Context, id string) (Bill, error)
	// GetPendingForMonth returns the pending bill for the employee and
	// month, or ErrBillNotFound.
	GetPendingForMonth(ctx context.Context, employeeID string, p period.Period) (Bill, error)
	ListByMonth(ctx context.Context, p period.Period) ([]Bill, error)
	UpdateStatus(ctx context.Context, id string, status BillStatus) (Bill, error)
	Delete(ctx context.Context, id string) error
}
