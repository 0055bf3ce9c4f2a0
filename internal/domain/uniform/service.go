package uniform

import (
	"context"
	"time"
)

type UniformService interface {
	Create(ctx context.Context, req CreateIssuanceRequest) (IssuanceResponse, error)
	Get(ctx context.Context, id string) (IssuanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]IssuanceResponse, error)
	// DepreciationReport values every live issuance at asOf.
	DepreciationReport(ctx context.Context, asOf time.Time) ([]DepreciationRow, error)
	Delete(ctx context.Context, id string) error
}
