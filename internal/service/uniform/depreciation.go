package uniform

import (
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// DepreciationPercent returns the percent of value remaining at `now` for an
// item delivered on `deliveryDate`. The curve is a quarterly step function,
// not linear decay: full value for the first three months, then 75/50/25,
// and zero from twelve months on.
func DepreciationPercent(deliveryDate, now time.Time) int {
	months := period.MonthsBetween(deliveryDate, now)

	switch {
	case months < 3:
		return 100
	case months < 6:
		return 75
	case months < 9:
		return 50
	case months < 12:
		return 25
	default:
		return 0
	}
}

// CurrentValue applies the remaining-percent step to the item's total price.
func CurrentValue(totalPrice decimal.Decimal, deliveryDate, now time.Time) decimal.Decimal {
	pct := decimal.NewFromInt(int64(DepreciationPercent(deliveryDate, now)))
	return totalPrice.Mul(pct).Div(decimal.NewFromInt(100))
}
