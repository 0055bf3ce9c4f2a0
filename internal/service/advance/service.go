package advance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/advance"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	p, err := period.Parse(req.DeductionMonth)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	exists, err := s.advanceRepo.ExistsForMonth(ctx, req.EmployeeID, p)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if exists {
		return advance.AdvanceResponse{}, advance.ErrAdvanceExistsForMonth
	}

	a := advance.Advance{
		ID:             uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		Amount:         req.Amount,
		RequestDate:    time.Now(),
		DeductionMonth: p,
		Status:         advance.AdvanceStatusPending,
	}

	created, err := s.advanceRepo.Create(ctx, a)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *AdvanceServiceImpl) Get(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	a, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return mapToResponse(a), nil
}

func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, mapToResponse(a))
	}
	return result, nil
}

func (s *AdvanceServiceImpl) Approve(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	return s.transition(ctx, id, advance.AdvanceStatusApproved)
}

func (s *AdvanceServiceImpl) Reject(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	return s.transition(ctx, id, advance.AdvanceStatusRejected)
}

func (s *AdvanceServiceImpl) MarkDeducted(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	return s.transition(ctx, id, advance.AdvanceStatusDeducted)
}

// transition is the single place a status change happens; anything outside
// the lifecycle table fails before any write.
func (s *AdvanceServiceImpl) transition(ctx context.Context, id string, target advance.AdvanceStatus) (advance.AdvanceResponse, error) {
	a, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	if !a.Status.CanTransition(target) {
		return advance.AdvanceResponse{}, advance.ErrInvalidTransition
	}

	updated, err := s.advanceRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.advanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.advanceRepo.Delete(ctx, id)
}

func (s *AdvanceServiceImpl) GetActiveForMonth(ctx context.Context, employeeID string, p period.Period) (advance.Advance, error) {
	return s.advanceRepo.GetActiveForMonth(ctx, employeeID, p)
}

func mapToResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		Amount:         a.Amount,
		RequestDate:    a.RequestDate.Format("2006-01-02"),
		DeductionMonth: a.DeductionMonth,
		Status:         string(a.Status),
	}
}
