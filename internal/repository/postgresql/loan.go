package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `
	id, employee_id, amount, installments_count, monthly_payment,
	paid_installments, paid_amount, remaining_amount,
	start_month, status, calculation_method, created_at, updated_at
`

func (r *loanRepository) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (
			id, employee_id, amount, installments_count, monthly_payment,
			paid_installments, paid_amount, remaining_amount,
			start_month, status, calculation_method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + loanColumns

	created, err := scanLoan(q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.Amount, l.InstallmentsCount, l.MonthlyPayment,
		l.PaidInstallments, l.PaidAmount, l.RemainingAmount,
		l.StartMonth, l.Status, l.CalculationMethod,
	))
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return created, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

func (r *loanRepository) ListByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE employee_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, employeeID)
}

func (r *loanRepository) ListActiveByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE employee_id = $1 AND status = 'active' ORDER BY created_at`
	return r.list(ctx, query, employeeID)
}

func (r *loanRepository) Update(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans SET
			amount = $2, installments_count = $3, monthly_payment = $4,
			paid_installments = $5, paid_amount = $6, remaining_amount = $7,
			start_month = $8, status = $9, calculation_method = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + loanColumns

	updated, err := scanLoan(q.QueryRow(ctx, query,
		l.ID, l.Amount, l.InstallmentsCount, l.MonthlyPayment,
		l.PaidInstallments, l.PaidAmount, l.RemainingAmount,
		l.StartMonth, l.Status, l.CalculationMethod,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to update loan: %w", err)
	}

	return updated, nil
}

func (r *loanRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}

	return nil
}

func (r *loanRepository) list(ctx context.Context, query string, args ...interface{}) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, rows.Err()
}

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Amount, &l.InstallmentsCount, &l.MonthlyPayment,
		&l.PaidInstallments, &l.PaidAmount, &l.RemainingAmount,
		&l.StartMonth, &l.Status, &l.CalculationMethod, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}
