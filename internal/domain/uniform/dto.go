package uniform

import (
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateIssuanceRequest struct {
	EmployeeID   string          `json:"employee_id"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	DeliveryDate string          `json:"delivery_date"` // "YYYY-MM-DD"
}

func (r *CreateIssuanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is required"})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}
	if !r.UnitPrice.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.DeliveryDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "delivery_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IssuanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	DeliveryDate string          `json:"delivery_date"`
}

// DepreciationRow is one row of the depreciation report: the issuance plus
// its derived value at the report's as-of date.
type DepreciationRow struct {
	IssuanceResponse
	PercentRemaining int             `json:"percent_remaining"`
	CurrentValue     decimal.Decimal `json:"current_value"`
	Archived         bool            `json:"archived,omitempty"`
}
