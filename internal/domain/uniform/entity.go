package uniform

import (
	"time"

	"github.com/shopspring/decimal"
)

// Issuance records uniforms or equipment handed to an employee. Its counted
// value depreciates on a quarterly step curve from the delivery date.
type Issuance struct {
	ID           string
	EmployeeID   string
	Type         string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	DeliveryDate time.Time
	ArchivedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
