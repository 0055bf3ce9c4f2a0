package training

import (
	"time"

	"github.com/shopspring/decimal"
)

// CourseStatus enum
type CourseStatus string

const (
	CourseStatusPlanned CourseStatus = "planned"
	CourseStatusTaken   CourseStatus = "taken"
)

// Course is a training course assigned to an employee. It starts planned and
// becomes taken once an actual date is recorded.
type Course struct {
	ID          string
	EmployeeID  string
	CourseName  string
	Cost        decimal.Decimal
	PlannedDate *time.Time
	ActualDate  *time.Time
	Status      CourseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Debt is the recoverable training cost claim created when a course is
// actually taken. The employer may reclaim the cost if the employee leaves
// before the expiry date. Read-only after creation.
type Debt struct {
	ID         string
	EmployeeID string
	CourseID   string
	CourseName string
	Cost       decimal.Decimal
	ActualDate time.Time
	ExpiryDate time.Time
	CreatedAt  time.Time
}

// DebtTermYears is the recovery window for training costs.
const DebtTermYears = 3

// Expired reports whether the recovery window has passed at the given time.
func (d Debt) Expired(at time.Time) bool {
	return !at.Before(d.ExpiryDate)
}
