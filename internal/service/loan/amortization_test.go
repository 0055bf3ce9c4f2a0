package loan

import (
	"errors"
	"testing"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPlanLoan_Auto(t *testing.T) {
	cases := []struct {
		amount       string
		installments int
		wantMonthly  string
	}{
		{"1200", 12, "100"},
		{"900", 3, "300"},
		{"1000", 3, "333.3333333333333333"},
		{"500", 1, "500"},
	}
	for _, c := range cases {
		plan, err := PlanLoan(dec(c.amount), loan.CalculationAuto, c.installments, decimal.Zero)
		if err != nil {
			t.Errorf("PlanLoan(%s, auto, %d) returned error: %v", c.amount, c.installments, err)
			continue
		}
		if plan.InstallmentsCount != c.installments {
			t.Errorf("PlanLoan(%s, auto, %d) installments = %d, want %d", c.amount, c.installments, plan.InstallmentsCount, c.installments)
		}
		if !plan.MonthlyPayment.Equal(dec(c.wantMonthly)) {
			t.Errorf("PlanLoan(%s, auto, %d) monthly = %s, want %s", c.amount, c.installments, plan.MonthlyPayment, c.wantMonthly)
		}
	}
}

func TestPlanLoan_Manual(t *testing.T) {
	cases := []struct {
		amount    string
		monthly   string
		wantCount int
	}{
		{"1000", "300", 4},
		{"900", "300", 3},
		{"1000", "1000", 1},
		{"1000", "999", 2},
		{"100", "300", 1},
	}
	for _, c := range cases {
		plan, err := PlanLoan(dec(c.amount), loan.CalculationManual, 0, dec(c.monthly))
		if err != nil {
			t.Errorf("PlanLoan(%s, manual, %s) returned error: %v", c.amount, c.monthly, err)
			continue
		}
		if plan.InstallmentsCount != c.wantCount {
			t.Errorf("PlanLoan(%s, manual, %s) installments = %d, want %d", c.amount, c.monthly, plan.InstallmentsCount, c.wantCount)
		}
		if !plan.MonthlyPayment.Equal(dec(c.monthly)) {
			t.Errorf("PlanLoan(%s, manual, %s) monthly = %s, want %s", c.amount, c.monthly, plan.MonthlyPayment, c.monthly)
		}
	}
}

func TestPlanLoan_Validation(t *testing.T) {
	cases := []struct {
		name         string
		amount       string
		method       loan.CalculationMethod
		installments int
		monthly      string
	}{
		{"zero amount", "0", loan.CalculationAuto, 12, "0"},
		{"negative amount", "-100", loan.CalculationAuto, 12, "0"},
		{"zero installments", "1000", loan.CalculationAuto, 0, "0"},
		{"negative installments", "1000", loan.CalculationAuto, -3, "0"},
		{"zero monthly", "1000", loan.CalculationManual, 0, "0"},
		{"negative monthly", "1000", loan.CalculationManual, 0, "-50"},
		{"unknown method", "1000", loan.CalculationMethod("weekly"), 12, "100"},
	}
	for _, c := range cases {
		_, err := PlanLoan(dec(c.amount), c.method, c.installments, dec(c.monthly))
		if err == nil {
			t.Errorf("%s: PlanLoan succeeded, want validation error", c.name)
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("%s: error type = %T, want validator.ValidationErrors", c.name, err)
		}
	}
}

func TestFinalInstallment(t *testing.T) {
	cases := []struct {
		amount       string
		monthly      string
		installments int
		want         string
	}{
		{"1000", "300", 4, "100"},
		{"1200", "100", 12, "100"},
		{"1000", "1000", 1, "1000"},
		{"100", "300", 1, "100"},
	}
	for _, c := range cases {
		got := FinalInstallment(dec(c.amount), dec(c.monthly), c.installments)
		if !got.Equal(dec(c.want)) {
			t.Errorf("FinalInstallment(%s, %s, %d) = %s, want %s", c.amount, c.monthly, c.installments, got, c.want)
		}
	}
}

func TestPlanLoan_ManualCountCoversAmount(t *testing.T) {
	// ceil semantics: (count-1) full payments never cover the amount, count
	// payments always do.
	amounts := []string{"1000", "950", "301", "300.01"}
	monthly := dec("300")
	for _, a := range amounts {
		plan, err := PlanLoan(dec(a), loan.CalculationManual, 0, monthly)
		if err != nil {
			t.Fatalf("PlanLoan(%s) error: %v", a, err)
		}
		n := decimal.NewFromInt(int64(plan.InstallmentsCount))
		if monthly.Mul(n).LessThan(dec(a)) {
			t.Errorf("amount %s: %d installments of %s do not cover it", a, plan.InstallmentsCount, monthly)
		}
		if plan.InstallmentsCount > 1 {
			nMinus := decimal.NewFromInt(int64(plan.InstallmentsCount - 1))
			if !monthly.Mul(nMinus).LessThan(dec(a)) {
				t.Errorf("amount %s: %d installments already cover it, count not minimal", a, plan.InstallmentsCount-1)
			}
		}
	}
}
