package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/advance"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `
	id, employee_id, amount, request_date, deduction_month, status, created_at, updated_at
`

func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_advances (id, employee_id, amount, request_date, deduction_month, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Amount, a.RequestDate, a.DeductionMonth, a.Status,
	))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM salary_advances WHERE id = $1`

	a, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) GetActiveForMonth(ctx context.Context, employeeID string, p period.Period) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM salary_advances
		WHERE employee_id = $1 AND deduction_month = $2 AND status = 'approved'
	`

	a, err := scanAdvance(q.QueryRow(ctx, query, employeeID, p))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get active advance: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) ExistsForMonth(ctx context.Context, employeeID string, p period.Period) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM salary_advances
			WHERE employee_id = $1 AND deduction_month = $2 AND status != 'rejected'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, p).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check advance existence: %w", err)
	}

	return exists, nil
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM salary_advances WHERE employee_id = $1 ORDER BY request_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepository) UpdateStatus(ctx context.Context, id string, status advance.AdvanceStatus) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_advances SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + advanceColumns

	a, err := scanAdvance(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to update advance status: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.RequestDate, &a.DeductionMonth,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
