package loan

import "context"

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	Update(ctx context.Context, l Loan) (Loan, error)
	Delete(ctx context.Context, id string) error
}
