package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/payroll"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const entryColumns = `
	p.id, p.employee_id, p.period_month, p.period_year,
	p.basic_salary, p.housing_allowance, p.transport_allowance, p.other_allowance,
	p.bonus_amount, p.overtime_pay,
	p.employee_insurance, p.loan_payment, p.advance_amount, p.mobile_bill,
	p.leave_deduction, p.penalty_amount,
	p.gross, p.total_deductions, p.net_salary,
	p.employer_social_insurance, p.health_insurance, p.income_tax,
	p.advance_id, p.mobile_bill_id,
	p.created_at, p.updated_at
`

func (r *payrollRepository) UpsertEntry(ctx context.Context, e payroll.Entry) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries AS p (
			id, employee_id, period_month, period_year,
			basic_salary, housing_allowance, transport_allowance, other_allowance,
			bonus_amount, overtime_pay,
			employee_insurance, loan_payment, advance_amount, mobile_bill,
			leave_deduction, penalty_amount,
			gross, total_deductions, net_salary,
			employer_social_insurance, health_insurance, income_tax,
			advance_id, mobile_bill_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			housing_allowance = EXCLUDED.housing_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			other_allowance = EXCLUDED.other_allowance,
			bonus_amount = EXCLUDED.bonus_amount,
			overtime_pay = EXCLUDED.overtime_pay,
			employee_insurance = EXCLUDED.employee_insurance,
			loan_payment = EXCLUDED.loan_payment,
			advance_amount = EXCLUDED.advance_amount,
			mobile_bill = EXCLUDED.mobile_bill,
			leave_deduction = EXCLUDED.leave_deduction,
			penalty_amount = EXCLUDED.penalty_amount,
			gross = EXCLUDED.gross,
			total_deductions = EXCLUDED.total_deductions,
			net_salary = EXCLUDED.net_salary,
			employer_social_insurance = EXCLUDED.employer_social_insurance,
			health_insurance = EXCLUDED.health_insurance,
			income_tax = EXCLUDED.income_tax,
			advance_id = COALESCE(EXCLUDED.advance_id, p.advance_id),
			mobile_bill_id = COALESCE(EXCLUDED.mobile_bill_id, p.mobile_bill_id),
			updated_at = NOW()
		RETURNING ` + entryColumns

	saved, err := scanEntry(q.QueryRow(ctx, query,
		e.ID, e.EmployeeID, e.PeriodMonth, e.PeriodYear,
		e.BasicSalary, e.HousingAllowance, e.TransportAllowance, e.OtherAllowance,
		e.BonusAmount, e.OvertimePay,
		e.EmployeeInsurance, e.LoanPayment, e.AdvanceAmount, e.MobileBill,
		e.LeaveDeduction, e.PenaltyAmount,
		e.Gross, e.TotalDeductions, e.NetSalary,
		e.EmployerSocialInsurance, e.HealthInsurance, e.IncomeTax,
		e.AdvanceID, e.MobileBillID,
	))
	if err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to upsert payroll entry: %w", err)
	}

	return saved, nil
}

func (r *payrollRepository) GetEntryByID(ctx context.Context, id string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `, e.name, e.code
		FROM payroll_entries p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	e, err := scanEntryWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) GetEntryByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `, e.name, e.code
		FROM payroll_entries p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	e, err := scanEntryWithEmployee(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return e, nil
}

func (r *payrollRepository) ListEntriesByPeriod(ctx context.Context, month, year int) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `, e.name, e.code
		FROM payroll_entries p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.period_month = $1 AND p.period_year = $2
		ORDER BY e.code
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		e, err := scanEntryWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *payrollRepository) DeleteEntry(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}

func (r *payrollRepository) GetAttendanceDeductions(ctx context.Context, employeeID string, month, year int) (payroll.AttendanceDeductions, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(leave_deduction), 0),
			COALESCE(SUM(penalty_amount), 0)
		FROM attendance_adjustments
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	att := payroll.AttendanceDeductions{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&att.LeaveDeduction, &att.PenaltyAmount)
	if err != nil {
		return payroll.AttendanceDeductions{}, fmt.Errorf("failed to get attendance deductions: %w", err)
	}

	return att, nil
}

func scanEntry(row pgx.Row) (payroll.Entry, error) {
	var e payroll.Entry
	err := row.Scan(entryFields(&e)...)
	return e, err
}

func scanEntryWithEmployee(row pgx.Row) (payroll.Entry, error) {
	var e payroll.Entry
	fields := append(entryFields(&e), &e.EmployeeName, &e.EmployeeCode)
	err := row.Scan(fields...)
	return e, err
}

func entryFields(e *payroll.Entry) []interface{} {
	return []interface{}{
		&e.ID, &e.EmployeeID, &e.PeriodMonth, &e.PeriodYear,
		&e.BasicSalary, &e.HousingAllowance, &e.TransportAllowance, &e.OtherAllowance,
		&e.BonusAmount, &e.OvertimePay,
		&e.EmployeeInsurance, &e.LoanPayment, &e.AdvanceAmount, &e.MobileBill,
		&e.LeaveDeduction, &e.PenaltyAmount,
		&e.Gross, &e.TotalDeductions, &e.NetSalary,
		&e.EmployerSocialInsurance, &e.HealthInsurance, &e.IncomeTax,
		&e.AdvanceID, &e.MobileBillID,
		&e.CreatedAt, &e.UpdatedAt,
	}
}
