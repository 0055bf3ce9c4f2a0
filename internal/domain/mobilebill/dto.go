package mobilebill

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UploadRow is one raw row of a bulk bill upload. Amount arrives as text so
// unparsable values can be counted as skipped instead of failing the batch.
type UploadRow struct {
	EmployeeID string `json:"employee_id"`
	Amount     string `json:"amount"`
}

type UploadRequest struct {
	DeductionMonth string      `json:"deduction_month"` // "YYYY-MM"
	Rows           []UploadRow `json:"rows"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := period.Parse(r.DeductionMonth); err != nil {
		errs = append(errs, validator.ValidationError{Field: "deduction_month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UploadResult aggregates per-row outcomes of a batch upload.
type UploadResult struct {
	BatchID string `json:"batch_id"`
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
}

type BillResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	Amount         decimal.Decimal `json:"amount"`
	DeductionMonth period.Period   `json:"deduction_month"`
	Status         string          `json:"status"`
	BatchID        string          `json:"batch_id"`
	UploadDate     string          `json:"upload_date"`
}
