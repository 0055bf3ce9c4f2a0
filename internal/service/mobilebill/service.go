package mobilebill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/mobilebill"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BillServiceImpl struct {
	billRepo mobilebill.BillRepository
}

func NewBillService(billRepo mobilebill.BillRepository) mobilebill.BillService {
	return &BillServiceImpl{billRepo: billRepo}
}

// Upload processes a bulk bill batch row by row. Bad rows (blank employee,
// unparsable or non-positive amount) are counted as skipped, never aborting
// the batch; valid rows insert a pending bill or update the existing one for
// the same employee and month. Only a bad target month fails the call.
func (s *BillServiceImpl) Upload(ctx context.Context, req mobilebill.UploadRequest) (mobilebill.UploadResult, error) {
	if err := req.Validate(); err != nil {
		return mobilebill.UploadResult{}, err
	}

	p, err := period.Parse(req.DeductionMonth)
	if err != nil {
		return mobilebill.UploadResult{}, err
	}

	result := mobilebill.UploadResult{
		BatchID: uuid.NewString(),
	}
	uploadDate := time.Now()

	for _, row := range req.Rows {
		if validator.IsEmpty(row.EmployeeID) {
			result.Skipped++
			continue
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil || !amount.IsPositive() {
			result.Skipped++
			continue
		}

		b := mobilebill.Bill{
			ID:             uuid.NewString(),
			EmployeeID:     row.EmployeeID,
			Amount:         amount,
			DeductionMonth: p,
			Status:         mobilebill.BillStatusPending,
			BatchID:        result.BatchID,
			UploadDate:     uploadDate,
		}

		_, inserted, err := s.billRepo.Upsert(ctx, b)
		if err != nil {
			return mobilebill.UploadResult{}, err
		}
		if inserted {
			result.Added++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (s *BillServiceImpl) Get(ctx context.Context, id string) (mobilebill.BillResponse, error) {
	b, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return mobilebill.BillResponse{}, err
	}
	return mapToResponse(b), nil
}

func (s *BillServiceImpl) ListByMonth(ctx context.Context, p period.Period) ([]mobilebill.BillResponse, error) {
	bills, err := s.billRepo.ListByMonth(ctx, p)
	if err != nil {
		return nil, err
	}

	result := make([]mobilebill.BillResponse, 0, len(bills))
	for _, b := range bills {
		result = append(result, mapToResponse(b))
	}
	return result, nil
}

func (s *BillServiceImpl) MarkDeducted(ctx context.Context, id string) (mobilebill.BillResponse, error) {
	b, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return mobilebill.BillResponse{}, err
	}

	if b.Status != mobilebill.BillStatusPending {
		return mobilebill.BillResponse{}, mobilebill.ErrBillAlreadyDeducted
	}

	updated, err := s.billRepo.UpdateStatus(ctx, id, mobilebill.BillStatusDeducted)
	if err != nil {
		return mobilebill.BillResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *BillServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.billRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.billRepo.Delete(ctx, id)
}

func (s *BillServiceImpl) GetPendingForMonth(ctx context.Context, employeeID string, p period.Period) (mobilebill.Bill, error) {
	return s.billRepo.GetPendingForMonth(ctx, employeeID, p)
}

func mapToResponse(b mobilebill.Bill) mobilebill.BillResponse {
	return mobilebill.BillResponse{
		ID:             b.ID,
		EmployeeID:     b.EmployeeID,
		Amount:         b.Amount,
		DeductionMonth: b.DeductionMonth,
		Status:         string(b.Status),
		BatchID:        b.BatchID,
		UploadDate:     b.UploadDate.Format(time.RFC3339),
	}
}
