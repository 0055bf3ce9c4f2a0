package advance

import (
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// AdvanceStatus enum
type AdvanceStatus string

const (
	AdvanceStatusPending  AdvanceStatus = "pending"
	AdvanceStatusApproved AdvanceStatus = "approved"
	AdvanceStatusRejected AdvanceStatus = "rejected"
	AdvanceStatusDeducted AdvanceStatus = "deducted"
)

// transitions is the full set of legal lifecycle moves. rejected and
// deducted are terminal.
var transitions = map[AdvanceStatus][]AdvanceStatus{
	AdvanceStatusPending:  {AdvanceStatusApproved, AdvanceStatusRejected},
	AdvanceStatusApproved: {AdvanceStatusDeducted},
}

// CanTransition reports whether moving from s to target is legal.
func (s AdvanceStatus) CanTransition(target AdvanceStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Advance is a one-shot salary advance deducted in full in a single month.
type Advance struct {
	ID             string
	EmployeeID     string
	Amount         decimal.Decimal
	RequestDate    time.Time
	DeductionMonth period.Period
	Status         AdvanceStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
