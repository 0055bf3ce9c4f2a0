package mobilebill

import (
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// BillStatus enum
type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusDeducted BillStatus = "deducted"
)

// Bill is one employee's mobile charge for one deduction month. At most one
// bill exists per (employee, month); re-uploads update the amount in place.
type Bill struct {
	ID             string
	EmployeeID     string
	Amount         decimal.Decimal
	DeductionMonth period.Period
	Status         BillStatus
	BatchID        string
	UploadDate     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
