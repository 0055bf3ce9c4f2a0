package advance

import (
	"context"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	Get(ctx context.Context, id string) (AdvanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
	Approve(ctx context.Context, id string) (AdvanceResponse, error)
	Reject(ctx context.Context, id string) (AdvanceResponse, error)
	MarkDeducted(ctx context.Context, id string) (AdvanceResponse, error)
	Delete(ctx context.Context, id string) error
	// GetActiveForMonth returns the approved advance the payroll run should
	// consume for this employee and month, or ErrAdvanceNotFound.
	GetActiveForMonth(ctx context.Context, employeeID string, p period.Period) (Advance, error)
}
