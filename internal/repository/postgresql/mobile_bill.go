package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/mobilebill"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type billRepository struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) mobilebill.BillRepository {
	return &billRepository{db: db}
}

const billColumns = `
	id, employee_id, amount, deduction_month, status, batch_id, upload_date, created_at, updated_at
`

func (r *billRepository) Upsert(ctx context.Context, b mobilebill.Bill) (mobilebill.Bill, bool, error) {
	q := GetQuerier(ctx, r.db)

	// xmax = 0 only on freshly inserted rows, which distinguishes the
	// insert case from the conflict-update case.
	query := `
		INSERT INTO mobile_bills (id, employee_id, amount, deduction_month, status, batch_id, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, deduction_month) DO UPDATE SET
			amount = EXCLUDED.amount,
			batch_id = EXCLUDED.batch_id,
			upload_date = EXCLUDED.upload_date,
			updated_at = NOW()
		RETURNING ` + billColumns + `, (xmax = 0) AS inserted`

	var stored mobilebill.Bill
	var inserted bool
	err := q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Amount, b.DeductionMonth, b.Status, b.BatchID, b.UploadDate,
	).Scan(
		&stored.ID, &stored.EmployeeID, &stored.Amount, &stored.DeductionMonth,
		&stored.Status, &stored.BatchID, &stored.UploadDate, &stored.CreatedAt, &stored.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return mobilebill.Bill{}, false, fmt.Errorf("failed to upsert mobile bill: %w", err)
	}

	return stored, inserted, nil
}

func (r *billRepository) GetByID(ctx context.Context, id string) (mobilebill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + billColumns + ` FROM mobile_bills WHERE id = $1`

	b, err := scanBill(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return mobilebill.Bill{}, mobilebill.ErrBillNotFound
		}
		return mobilebill.Bill{}, fmt.Errorf("failed to get mobile bill: %w", err)
	}

	return b, nil
}

func (r *billRepository) GetPendingForMonth(ctx context.Context, employeeID string, p period.Period) (mobilebill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billColumns + `
		FROM mobile_bills
		WHERE employee_id = $1 AND deduction_month = $2 AND status = 'pending'
	`

	b, err := scanBill(q.QueryRow(ctx, query, employeeID, p))
	if err != nil {
		if err == pgx.ErrNoRows {
			return mobilebill.Bill{}, mobilebill.ErrBillNotFound
		}
		return mobilebill.Bill{}, fmt.Errorf("failed to get pending mobile bill: %w", err)
	}

	return b, nil
}

func (r *billRepository) ListByMonth(ctx context.Context, p period.Period) ([]mobilebill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + billColumns + ` FROM mobile_bills WHERE deduction_month = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list mobile bills: %w", err)
	}
	defer rows.Close()

	var bills []mobilebill.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mobile bill: %w", err)
		}
		bills = append(bills, b)
	}

	return bills, rows.Err()
}

func (r *billRepository) UpdateStatus(ctx context.Context, id string, status mobilebill.BillStatus) (mobilebill.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE mobile_bills SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + billColumns

	b, err := scanBill(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return mobilebill.Bill{}, mobilebill.ErrBillNotFound
		}
		return mobilebill.Bill{}, fmt.Errorf("failed to update mobile bill status: %w", err)
	}

	return b, nil
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM mobile_bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mobile bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mobilebill.ErrBillNotFound
	}

	return nil
}

func scanBill(row pgx.Row) (mobilebill.Bill, error) {
	var b mobilebill.Bill
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Amount, &b.DeductionMonth,
		&b.Status, &b.BatchID, &b.UploadDate, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}
