package loan

import "context"

type LoanService interface {
	Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	Get(ctx context.Context, id string) (LoanResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LoanResponse, error)
	RecordPayment(ctx context.Context, id string) (LoanResponse, error)
	Edit(ctx context.Context, req EditLoanRequest) (LoanResponse, error)
	Delete(ctx context.Context, id string) error
	Schedule(ctx context.Context, id string) ([]InstallmentEntryResponse, error)
}
