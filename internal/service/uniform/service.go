package uniform

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/uniform"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UniformServiceImpl struct {
	issuanceRepo uniform.IssuanceRepository
	employeeRepo employee.EmployeeRepository

	// autoArchiveAtZero drops fully depreciated issuances from the live
	// report and stamps them archived on first sight.
	autoArchiveAtZero bool
}

func NewUniformService(issuanceRepo uniform.IssuanceRepository, employeeRepo employee.EmployeeRepository, autoArchiveAtZero bool) uniform.UniformService {
	return &UniformServiceImpl{
		issuanceRepo:      issuanceRepo,
		employeeRepo:      employeeRepo,
		autoArchiveAtZero: autoArchiveAtZero,
	}
}

func (s *UniformServiceImpl) Create(ctx context.Context, req uniform.CreateIssuanceRequest) (uniform.IssuanceResponse, error) {
	if err := req.Validate(); err != nil {
		return uniform.IssuanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return uniform.IssuanceResponse{}, err
	}

	deliveryDate, _ := validator.IsValidDate(req.DeliveryDate)
	now := time.Now()

	i := uniform.Issuance{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalPrice:   req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		DeliveryDate: deliveryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.issuanceRepo.Create(ctx, i)
	if err != nil {
		return uniform.IssuanceResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *UniformServiceImpl) Get(ctx context.Context, id string) (uniform.IssuanceResponse, error) {
	i, err := s.issuanceRepo.GetByID(ctx, id)
	if err != nil {
		return uniform.IssuanceResponse{}, err
	}
	return mapToResponse(i), nil
}

func (s *UniformServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]uniform.IssuanceResponse, error) {
	issuances, err := s.issuanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]uniform.IssuanceResponse, 0, len(issuances))
	for _, i := range issuances {
		responses = append(responses, mapToResponse(i))
	}
	return responses, nil
}

func (s *UniformServiceImpl) DepreciationReport(ctx context.Context, asOf time.Time) ([]uniform.DepreciationRow, error) {
	issuances, err := s.issuanceRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	rows := make([]uniform.DepreciationRow, 0, len(issuances))
	for _, i := range issuances {
		pct := DepreciationPercent(i.DeliveryDate, asOf)

		if pct == 0 && s.autoArchiveAtZero {
			if err := s.issuanceRepo.Archive(ctx, i.ID, asOf); err != nil {
				return nil, err
			}
			continue
		}

		rows = append(rows, uniform.DepreciationRow{
			IssuanceResponse: mapToResponse(i),
			PercentRemaining: pct,
			CurrentValue:     CurrentValue(i.TotalPrice, i.DeliveryDate, asOf),
			Archived:         i.ArchivedAt != nil,
		})
	}
	return rows, nil
}

func (s *UniformServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.issuanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.issuanceRepo.Delete(ctx, id)
}

// ========== HELPER FUNCTIONS ==========

func mapToResponse(i uniform.Issuance) uniform.IssuanceResponse {
	return uniform.IssuanceResponse{
		ID:           i.ID,
		EmployeeID:   i.EmployeeID,
		Type:         i.Type,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		TotalPrice:   i.TotalPrice,
		DeliveryDate: i.DeliveryDate.Format("2006-01-02"),
	}
}
