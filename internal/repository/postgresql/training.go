package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/training"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/database"
)

type trainingRepository struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) training.TrainingRepository {
	return &trainingRepository{db: db}
}

const courseColumns = `
	id, employee_id, course_name, cost, planned_date, actual_date, status, created_at, updated_at
`

const debtColumns = `
	id, employee_id, course_id, course_name, cost, actual_date, expiry_date, created_at
`

// ========== COURSES ==========

func (r *trainingRepository) CreateCourse(ctx context.Context, c training.Course) (training.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO training_courses (id, employee_id, course_name, cost, planned_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + courseColumns

	created, err := scanCourse(q.QueryRow(ctx, query,
		c.ID, c.EmployeeID, c.CourseName, c.Cost, c.PlannedDate, c.Status,
	))
	if err != nil {
		return training.Course{}, fmt.Errorf("failed to create training course: %w", err)
	}

	return created, nil
}

func (r *trainingRepository) GetCourseByID(ctx context.Context, id string) (training.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + courseColumns + ` FROM training_courses WHERE id = $1`

	c, err := scanCourse(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return training.Course{}, training.ErrCourseNotFound
		}
		return training.Course{}, fmt.Errorf("failed to get training course: %w", err)
	}

	return c, nil
}

func (r *trainingRepository) ListCoursesByEmployee(ctx context.Context, employeeID string) ([]training.Course, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + courseColumns + ` FROM training_courses WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training courses: %w", err)
	}
	defer rows.Close()

	var courses []training.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training course: %w", err)
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

// MarkCourseTaken updates the course and inserts the debt atomically so a
// taken course can never exist without its debt row.
func (r *trainingRepository) MarkCourseTaken(ctx context.Context, c training.Course, debt *training.Debt) (training.Course, error) {
	var updated training.Course

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE training_courses SET actual_date = $2, status = $3, updated_at = NOW()
			WHERE id = $1 AND status = 'planned'
			RETURNING ` + courseColumns

		var err error
		updated, err = scanCourse(tx.QueryRow(ctx, query, c.ID, c.ActualDate, c.Status))
		if err != nil {
			if err == pgx.ErrNoRows {
				return training.ErrCourseAlreadyTaken
			}
			return fmt.Errorf("failed to mark course taken: %w", err)
		}

		if debt == nil {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO training_debts (id, employee_id, course_id, course_name, cost, actual_date, expiry_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, debt.ID, debt.EmployeeID, debt.CourseID, debt.CourseName, debt.Cost, debt.ActualDate, debt.ExpiryDate)
		if err != nil {
			return fmt.Errorf("failed to create training debt: %w", err)
		}

		return nil
	})
	if err != nil {
		return training.Course{}, err
	}

	return updated, nil
}

// ========== DEBTS ==========

func (r *trainingRepository) GetDebtByCourse(ctx context.Context, courseID string) (training.Debt, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + debtColumns + ` FROM training_debts WHERE course_id = $1`

	d, err := scanDebt(q.QueryRow(ctx, query, courseID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return training.Debt{}, training.ErrDebtNotFound
		}
		return training.Debt{}, fmt.Errorf("failed to get training debt: %w", err)
	}

	return d, nil
}

func (r *trainingRepository) ListDebtsByEmployee(ctx context.Context, employeeID string) ([]training.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM training_debts WHERE employee_id = $1 ORDER BY actual_date DESC`
	return r.listDebts(ctx, query, employeeID)
}

func (r *trainingRepository) ListActiveDebts(ctx context.Context, asOf time.Time) ([]training.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM training_debts WHERE expiry_date > $1 ORDER BY expiry_date`
	return r.listDebts(ctx, query, asOf)
}

func (r *trainingRepository) listDebts(ctx context.Context, query string, args ...interface{}) ([]training.Debt, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list training debts: %w", err)
	}
	defer rows.Close()

	var debts []training.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training debt: %w", err)
		}
		debts = append(debts, d)
	}

	return debts, rows.Err()
}

func scanCourse(row pgx.Row) (training.Course, error) {
	var c training.Course
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.CourseName, &c.Cost, &c.PlannedDate, &c.ActualDate,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func scanDebt(row pgx.Row) (training.Debt, error) {
	var d training.Debt
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.CourseID, &d.CourseName, &d.Cost,
		&d.ActualDate, &d.ExpiryDate, &d.CreatedAt,
	)
	return d, err
}
