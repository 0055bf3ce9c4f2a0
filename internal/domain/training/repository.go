package training

import (
	"context"
	"time"
)

type TrainingRepository interface {
	CreateCourse(ctx context.Context, c Course) (Course, error)
	GetCourseByID(ctx context.Context, id string) (Course, error)
	ListCoursesByEmployee(ctx context.Context, employeeID string) ([]Course, error)
	// MarkCourseTaken sets the course's actual date and status and, when
	// debt is non-nil, inserts the debt row in the same transaction.
	MarkCourseTaken(ctx context.Context, c Course, debt *Debt) (Course, error)
	GetDebtByCourse(ctx context.Context, courseID string) (Debt, error)
	ListDebtsByEmployee(ctx context.Context, employeeID string) ([]Debt, error)
	// ListActiveDebts returns debts whose expiry date is after asOf.
	ListActiveDebts(ctx context.Context, asOf time.Time) ([]Debt, error)
}
