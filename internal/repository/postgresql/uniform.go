package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/uniform"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
)

type issuanceRepository struct {
	db *database.DB
}

func NewIssuanceRepository(db *database.DB) uniform.IssuanceRepository {
	return &issuanceRepository{db: db}
}

const issuanceColumns = `
	id, employee_id, type, quantity, unit_price, total_price,
	delivery_date, archived_at, created_at, updated_at
`

func (r *issuanceRepository) Create(ctx context.Context, i uniform.Issuance) (uniform.Issuance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO uniform_issuances (id, employee_id, type, quantity, unit_price, total_price, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + issuanceColumns

	created, err := scanIssuance(q.QueryRow(ctx, query,
		i.ID, i.EmployeeID, i.Type, i.Quantity, i.UnitPrice, i.TotalPrice, i.DeliveryDate,
	))
	if err != nil {
		return uniform.Issuance{}, fmt.Errorf("failed to create uniform issuance: %w", err)
	}

	return created, nil
}

func (r *issuanceRepository) GetByID(ctx context.Context, id string) (uniform.Issuance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + issuanceColumns + ` FROM uniform_issuances WHERE id = $1`

	i, err := scanIssuance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return uniform.Issuance{}, uniform.ErrIssuanceNotFound
		}
		return uniform.Issuance{}, fmt.Errorf("failed to get uniform issuance: %w", err)
	}

	return i, nil
}

func (r *issuanceRepository) List(ctx context.Context, includeArchived bool) ([]uniform.Issuance, error) {
	query := `SELECT ` + issuanceColumns + ` FROM uniform_issuances ORDER BY delivery_date`
	if !includeArchived {
		query = `SELECT ` + issuanceColumns + ` FROM uniform_issuances WHERE archived_at IS NULL ORDER BY delivery_date`
	}
	return r.listQuery(ctx, query)
}

func (r *issuanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]uniform.Issuance, error) {
	query := `SELECT ` + issuanceColumns + ` FROM uniform_issuances WHERE employee_id = $1 ORDER BY delivery_date`
	return r.listQuery(ctx, query, employeeID)
}

func (r *issuanceRepository) Archive(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE uniform_issuances SET archived_at = $2, updated_at = NOW()
		WHERE id = $1 AND archived_at IS NULL
	`, id, at)
	if err != nil {
		return fmt.Errorf("failed to archive uniform issuance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return uniform.ErrIssuanceNotFound
	}

	return nil
}

func (r *issuanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM uniform_issuances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete uniform issuance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return uniform.ErrIssuanceNotFound
	}

	return nil
}

func (r *issuanceRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]uniform.Issuance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list uniform issuances: %w", err)
	}
	defer rows.Close()

	var issuances []uniform.Issuance
	for rows.Next() {
		i, err := scanIssuance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan uniform issuance: %w", err)
		}
		issuances = append(issuances, i)
	}

	return issuances, rows.Err()
}

func scanIssuance(row pgx.Row) (uniform.Issuance, error) {
	var i uniform.Issuance
	err := row.Scan(
		&i.ID, &i.EmployeeID, &i.Type, &i.Quantity, &i.UnitPrice, &i.TotalPrice,
		&i.DeliveryDate, &i.ArchivedAt, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}
