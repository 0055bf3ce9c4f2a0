package training

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/training"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
)

type TrainingServiceImpl struct {
	trainingRepo training.TrainingRepository
	employeeRepo employee.EmployeeRepository
}

func NewTrainingService(trainingRepo training.TrainingRepository, employeeRepo employee.EmployeeRepository) training.TrainingService {
	return &TrainingServiceImpl{
		trainingRepo: trainingRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *TrainingServiceImpl) AssignCourse(ctx context.Context, req training.AssignCourseRequest) (training.CourseResponse, error) {
	if err := req.Validate(); err != nil {
		return training.CourseResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return training.CourseResponse{}, err
	}

	now := time.Now()
	c := training.Course{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		CourseName: req.CourseName,
		Cost:       req.Cost,
		Status:     training.CourseStatusPlanned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.PlannedDate != nil {
		planned, _ := validator.IsValidDate(*req.PlannedDate)
		c.PlannedDate = &planned
	}

	created, err := s.trainingRepo.CreateCourse(ctx, c)
	if err != nil {
		return training.CourseResponse{}, err
	}
	return mapCourseToResponse(created), nil
}

func (s *TrainingServiceImpl) GetCourse(ctx context.Context, id string) (training.CourseResponse, error) {
	c, err := s.trainingRepo.GetCourseByID(ctx, id)
	if err != nil {
		return training.CourseResponse{}, err
	}
	return mapCourseToResponse(c), nil
}

func (s *TrainingServiceImpl) ListCoursesByEmployee(ctx context.Context, employeeID string) ([]training.CourseResponse, error) {
	courses, err := s.trainingRepo.ListCoursesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]training.CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, mapCourseToResponse(c))
	}
	return responses, nil
}

func (s *TrainingServiceImpl) RecordActualCourse(ctx context.Context, req training.RecordActualRequest) (training.CourseResponse, error) {
	if err := req.Validate(); err != nil {
		return training.CourseResponse{}, err
	}

	c, err := s.trainingRepo.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return training.CourseResponse{}, err
	}
	if c.Status == training.CourseStatusTaken {
		return training.CourseResponse{}, training.ErrCourseAlreadyTaken
	}

	actualDate, _ := validator.IsValidDate(req.ActualDate)
	c.ActualDate = &actualDate
	c.Status = training.CourseStatusTaken
	c.UpdatedAt = time.Now()

	// zero-cost courses never produce a debt
	var debt *training.Debt
	if c.Cost.IsPositive() {
		debt = &training.Debt{
			ID:         uuid.NewString(),
			EmployeeID: c.EmployeeID,
			CourseID:   c.ID,
			CourseName: c.CourseName,
			Cost:       c.Cost,
			ActualDate: actualDate,
			ExpiryDate: actualDate.AddDate(training.DebtTermYears, 0, 0),
			CreatedAt:  time.Now(),
		}
	}

	updated, err := s.trainingRepo.MarkCourseTaken(ctx, c, debt)
	if err != nil {
		return training.CourseResponse{}, err
	}
	return mapCourseToResponse(updated), nil
}

func (s *TrainingServiceImpl) ListDebtsByEmployee(ctx context.Context, employeeID string) ([]training.DebtResponse, error) {
	debts, err := s.trainingRepo.ListDebtsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapDebtsToResponse(debts), nil
}

func (s *TrainingServiceImpl) ListActiveDebts(ctx context.Context, asOf time.Time) ([]training.DebtResponse, error) {
	debts, err := s.trainingRepo.ListActiveDebts(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return mapDebtsToResponse(debts), nil
}

// ========== HELPER FUNCTIONS ==========

func mapCourseToResponse(c training.Course) training.CourseResponse {
	resp := training.CourseResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		CourseName: c.CourseName,
		Cost:       c.Cost,
		Status:     string(c.Status),
	}
	if c.PlannedDate != nil {
		planned := c.PlannedDate.Format("2006-01-02")
		resp.PlannedDate = &planned
	}
	if c.ActualDate != nil {
		actual := c.ActualDate.Format("2006-01-02")
		resp.ActualDate = &actual
	}
	return resp
}

func mapDebtsToResponse(debts []training.Debt) []training.DebtResponse {
	responses := make([]training.DebtResponse, 0, len(debts))
	for _, d := range debts {
		responses = append(responses, training.DebtResponse{
			ID:         d.ID,
			EmployeeID: d.EmployeeID,
			CourseID:   d.CourseID,
			CourseName: d.CourseName,
			Cost:       d.Cost,
			ActualDate: d.ActualDate.Format("2006-01-02"),
			ExpiryDate: d.ExpiryDate.Format("2006-01-02"),
		})
	}
	return responses
}
