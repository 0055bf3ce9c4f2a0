package mobilebill

import (
	"context"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type BillService interface {
	Upload(ctx context.Context, req UploadRequest) (UploadResult, error)
	Get(ctx context.Context, id string) (BillResponse, error)
	ListByMonth(ctx context.Context, p period.Period) ([]BillResponse, error)
	MarkDeducted(ctx context.Context, id string) (BillResponse, error)
	Delete(ctx context.Context, id string) error
	// GetPendingForMonth returns the pending bill the payroll run should
	// consume for this employee and month, or ErrBillNotFound.
	GetPendingForMonth(ctx context.Context, employeeID string, p period.Period) (Bill, error)
}
