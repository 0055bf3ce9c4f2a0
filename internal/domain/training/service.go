package training

import (
	"context"
	"time"
)

type TrainingService interface {
	AssignCourse(ctx context.Context, req AssignCourseRequest) (CourseResponse, error)
	GetCourse(ctx context.Context, id string) (CourseResponse, error)
	ListCoursesByEmployee(ctx context.Context, employeeID string) ([]CourseResponse, error)
	// RecordActualCourse marks the course taken and, when its cost is
	// positive, creates the training debt exactly once.
	RecordActualCourse(ctx context.Context, req RecordActualRequest) (CourseResponse, error)
	ListDebtsByEmployee(ctx context.Context, employeeID string) ([]DebtResponse, error)
	ListActiveDebts(ctx context.Context, asOf time.Time) ([]DebtResponse, error)
}
