package training

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AssignCourseRequest struct {
	EmployeeID  string          `json:"employee_id"`
	CourseName  string          `json:"course_name"`
	Cost        decimal.Decimal `json:"cost"`
	PlannedDate *string         `json:"planned_date,omitempty"` // "YYYY-MM-DD"
}

func (r *AssignCourseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.CourseName) {
		errs = append(errs, validator.ValidationError{Field: "course_name", Message: "is required"})
	}
	if r.Cost.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cost", Message: "must be non-negative"})
	}
	if r.PlannedDate != nil {
		if _, ok := validator.IsValidDate(*r.PlannedDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "planned_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordActualRequest struct {
	CourseID   string
	ActualDate string `json:"actual_date"` // "YYYY-MM-DD"
}

func (r *RecordActualRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CourseID) {
		errs = append(errs, validator.ValidationError{Field: "course_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ActualDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "actual_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CourseResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	CourseName  string          `json:"course_name"`
	Cost        decimal.Decimal `json:"cost"`
	PlannedDate *string         `json:"planned_date,omitempty"`
	ActualDate  *string         `json:"actual_date,omitempty"`
	Status      string          `json:"status"`
}

type DebtResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	CourseID   string          `json:"course_id"`
	CourseName string          `json:"course_name"`
	Cost       decimal.Decimal `json:"cost"`
	ActualDate string          `json:"actual_date"`
	ExpiryDate string          `json:"expiry_date"`
}
