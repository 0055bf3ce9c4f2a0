package advance

import (
	"context"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	// GetActiveForMonth returns the approved advance for the given employee
	// and deduction month, or ErrAdvanceNotFound.
	GetActiveForMonth(ctx context.Context, employeeID string, p period.Period) (Advance, error)
	// ExistsForMonth reports whether a non-rejected advance already exists
	// for the employee and month.
	ExistsForMonth(ctx context.Context, employeeID string, p period.Period) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Advance, error)
	UpdateStatus(ctx context.Context, id string, status AdvanceStatus) (Advance, error)
	Delete(ctx context.Context, id string) error
}
