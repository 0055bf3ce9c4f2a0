package uniform

import (
	"context"
	"time"
)

type IssuanceRepository interface {
	Create(ctx context.Context, i Issuance) (Issuance, error)
	GetByID(ctx context.Context, id string) (Issuance, error)
	List(ctx context.Context, includeArchived bool) ([]Issuance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Issuance, error)
	Archive(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
