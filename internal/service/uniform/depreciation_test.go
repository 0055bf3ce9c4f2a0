package uniform

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDepreciationPercent_Breakpoints(t *testing.T) {
	delivery := date(2025, time.January, 1)
	cases := []struct {
		now  time.Time
		want int
	}{
		{date(2025, time.January, 1), 100},  // 0 months
		{date(2025, time.March, 31), 100},   // 2 months
		{date(2025, time.April, 1), 75},     // exactly 3 months
		{date(2025, time.June, 30), 75},     // 5 months
		{date(2025, time.July, 1), 50},       // exactly 6 months
		{date(2025, time.August, 1), 50},     // 7 months
		{date(2025, time.September, 30), 50}, // 8 months
		{date(2025, time.October, 1), 25},    // exactly 9 months
		{date(2025, time.December, 31), 25},  // 11 months
		{date(2026, time.January, 1), 0},    // exactly 12 months
		{date(2030, time.January, 1), 0},    // long past
	}
	for _, c := range cases {
		got := DepreciationPercent(delivery, c.now)
		if got != c.want {
			t.Errorf("DepreciationPercent(%s, %s) = %d, want %d",
				delivery.Format("2006-01-02"), c.now.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestDepreciationPercent_DayOfMonthAdjustment(t *testing.T) {
	// delivered on the 15th: the month boundary only counts once the 15th passes
	delivery := date(2025, time.January, 15)
	if got := DepreciationPercent(delivery, date(2025, time.April, 14)); got != 100 {
		t.Errorf("one day before 3 whole months: percent = %d, want 100", got)
	}
	if got := DepreciationPercent(delivery, date(2025, time.April, 15)); got != 75 {
		t.Errorf("at exactly 3 whole months: percent = %d, want 75", got)
	}
}

func TestCurrentValue(t *testing.T) {
	delivery := date(2025, time.January, 1)
	total := decimal.NewFromInt(1000)

	cases := []struct {
		now  time.Time
		want string
	}{
		{date(2025, time.February, 1), "1000"},
		{date(2025, time.April, 1), "750"},
		{date(2025, time.July, 1), "500"},
		{date(2025, time.October, 1), "250"}, // 9 months: 25% of 1000
		{date(2026, time.June, 1), "0"},
	}
	for _, c := range cases {
		got := CurrentValue(total, delivery, c.now)
		want, _ := decimal.NewFromString(c.want)
		if !got.Equal(want) {
			t.Errorf("CurrentValue(1000, %s) = %s, want %s", c.now.Format("2006-01-02"), got, want)
		}
	}
}
