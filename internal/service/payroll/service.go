package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/advance"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/mobilebill"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/payroll"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// PayrollServiceImpl aggregates the deduction ledgers into one payroll entry
// per employee and period. It consumes one-shot obligations (advance, mobile
// bill) through their own services so their status rules stay in one place.
type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	loanRepo     loan.LoanRepository
	advanceSvc   advance.AdvanceService
	billSvc      mobilebill.BillService
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	loanRepo loan.LoanRepository,
	advanceSvc advance.AdvanceService,
	billSvc mobilebill.BillService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		loanRepo:     loanRepo,
		advanceSvc:   advanceSvc,
		billSvc:      billSvc,
	}
}

func (s *PayrollServiceImpl) Run(ctx context.Context, req payroll.RunRequest) (payroll.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	if !emp.IsActive {
		return payroll.EntryResponse{}, employee.ErrEmployeeInactive
	}

	base := req.Base
	if base == nil {
		base, err = s.defaultBaseInputs(ctx, emp, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return payroll.EntryResponse{}, err
		}
	}

	p := period.FromMonthYear(req.PeriodMonth, req.PeriodYear)

	loanPayment, err := s.loanPaymentForMonth(ctx, req.EmployeeID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	advanceAmount := decimal.Zero
	var advanceID *string
	adv, err := s.advanceSvc.GetActiveForMonth(ctx, req.EmployeeID, p)
	switch {
	case err == nil:
		advanceAmount = adv.Amount
		advanceID = &adv.ID
	case errors.Is(err, advance.ErrAdvanceNotFound):
	default:
		return payroll.EntryResponse{}, err
	}

	mobileBill := decimal.Zero
	var mobileBillID *string
	bill, err := s.billSvc.GetPendingForMonth(ctx, req.EmployeeID, p)
	switch {
	case err == nil:
		mobileBill = bill.Amount
		mobileBillID = &bill.ID
	case errors.Is(err, mobilebill.ErrBillNotFound):
	default:
		return payroll.EntryResponse{}, err
	}

	now := time.Now()
	entry := payroll.Entry{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,

		BasicSalary:        base.BasicSalary,
		HousingAllowance:   base.HousingAllowance,
		TransportAllowance: base.TransportAllowance,
		OtherAllowance:     base.OtherAllowance,
		BonusAmount:        base.BonusAmount,
		OvertimePay:        base.OvertimePay,

		EmployeeInsurance: base.EmployeeInsurance,
		LoanPayment:       loanPayment,
		AdvanceAmount:     advanceAmount,
		MobileBill:        mobileBill,
		LeaveDeduction:    base.LeaveDeduction,
		PenaltyAmount:     base.PenaltyAmount,

		EmployerSocialInsurance: base.EmployerSocialInsurance,
		HealthInsurance:         base.HealthInsurance,
		IncomeTax:               base.IncomeTax,

		AdvanceID:    advanceID,
		MobileBillID: mobileBillID,

		CreatedAt: now,
		UpdatedAt: now,
	}

	// bonus stays out of the stored gross; it rides on top of net only
	entry.Gross = entry.BasicSalary.Add(entry.TotalAllowances()).Add(entry.OvertimePay)
	entry.TotalDeductions = entry.EmployeeInsurance.
		Add(entry.LoanPayment).
		Add(entry.AdvanceAmount).
		Add(entry.MobileBill).
		Add(entry.LeaveDeduction).
		Add(entry.PenaltyAmount)
	entry.NetSalary = entry.Gross.Add(entry.BonusAmount).Sub(entry.TotalDeductions)

	saved, err := s.payrollRepo.UpsertEntry(ctx, entry)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	// the entry is committed, now retire the obligations it consumed
	if advanceID != nil {
		if _, err := s.advanceSvc.MarkDeducted(ctx, *advanceID); err != nil {
			return payroll.EntryResponse{}, err
		}
	}
	if mobileBillID != nil {
		if _, err := s.billSvc.MarkDeducted(ctx, *mobileBillID); err != nil {
			return payroll.EntryResponse{}, err
		}
	}

	return mapToResponse(saved), nil
}

func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.EntryResponse, error) {
	e, err := s.payrollRepo.GetEntryByID(ctx, id)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *PayrollServiceImpl) GetEntryByPeriod(ctx context.Context, employeeID string, month, year int) (payroll.EntryResponse, error) {
	if !period.FromMonthYear(month, year).Valid() {
		return payroll.EntryResponse{}, payroll.ErrInvalidPeriod
	}

	e, err := s.payrollRepo.GetEntryByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *PayrollServiceImpl) ListEntriesByPeriod(ctx context.Context, month, year int) ([]payroll.EntryResponse, error) {
	if !period.FromMonthYear(month, year).Valid() {
		return nil, payroll.ErrInvalidPeriod
	}

	entries, err := s.payrollRepo.ListEntriesByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, mapToResponse(e))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetEntryByID(ctx, id); err != nil {
		return err
	}
	return s.payrollRepo.DeleteEntry(ctx, id)
}

func (s *PayrollServiceImpl) DeductionsForMonth(ctx context.Context, employeeID string, month, year int) (payroll.DeductionSummary, error) {
	p := period.FromMonthYear(month, year)
	if !p.Valid() {
		return payroll.DeductionSummary{}, payroll.ErrInvalidPeriod
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.DeductionSummary{}, err
	}

	loans, err := s.loanRepo.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.DeductionSummary{}, err
	}
	loanPayment := decimal.Zero
	for _, l := range loans {
		loanPayment = loanPayment.Add(l.NextInstallmentAmount())
	}

	advanceAmount := decimal.Zero
	if adv, err := s.advanceSvc.GetActiveForMonth(ctx, employeeID, p); err == nil {
		advanceAmount = adv.Amount
	} else if !errors.Is(err, advance.ErrAdvanceNotFound) {
		return payroll.DeductionSummary{}, err
	}

	mobileBill := decimal.Zero
	if bill, err := s.billSvc.GetPendingForMonth(ctx, employeeID, p); err == nil {
		mobileBill = bill.Amount
	} else if !errors.Is(err, mobilebill.ErrBillNotFound) {
		return payroll.DeductionSummary{}, err
	}

	return payroll.DeductionSummary{
		EmployeeID:      employeeID,
		PeriodMonth:     month,
		PeriodYear:      year,
		ActiveLoans:     len(loans),
		LoanPayment:     loanPayment,
		AdvanceAmount:   advanceAmount,
		MobileBill:      mobileBill,
		TotalObligation: loanPayment.Add(advanceAmount).Add(mobileBill),
	}, nil
}

// ========== HELPER FUNCTIONS ==========

// defaultBaseInputs builds the run's base amounts from the employee master
// row and the attendance aggregates when the caller did not supply them.
func (s *PayrollServiceImpl) defaultBaseInputs(ctx context.Context, emp employee.Employee, month, year int) (*payroll.BaseInputs, error) {
	if emp.BasicSalary.IsZero() {
		return nil, payroll.ErrNoBasicSalary
	}

	att, err := s.payrollRepo.GetAttendanceDeductions(ctx, emp.ID, month, year)
	if err != nil {
		return nil, err
	}

	return &payroll.BaseInputs{
		BasicSalary:        emp.BasicSalary,
		HousingAllowance:   emp.HousingAllowance,
		TransportAllowance: emp.TransportAllowance,
		OtherAllowance:     emp.OtherAllowance,
		BonusAmount:        decimal.Zero,
		OvertimePay:        decimal.Zero,

		EmployeeInsurance: emp.EmployeeInsurance,
		LeaveDeduction:    att.LeaveDeduction,
		PenaltyAmount:     att.PenaltyAmount,

		EmployerSocialInsurance: emp.EmployerSocialInsurance,
		HealthInsurance:         emp.HealthInsurance,
		IncomeTax:               emp.IncomeTax,
	}, nil
}

// loanPaymentForMonth sums the next installment over the employee's active
// loans, each capped at its remaining balance. The loans themselves are not
// advanced here.
func (s *PayrollServiceImpl) loanPaymentForMonth(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	loans, err := s.loanRepo.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(l.NextInstallmentAmount())
	}
	return total, nil
}

func mapToResponse(e payroll.Entry) payroll.EntryResponse {
	resp := payroll.EntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		PeriodMonth: e.PeriodMonth,
		PeriodYear:  e.PeriodYear,

		BasicSalary:        e.BasicSalary,
		HousingAllowance:   e.HousingAllowance,
		TransportAllowance: e.TransportAllowance,
		OtherAllowance:     e.OtherAllowance,
		BonusAmount:        e.BonusAmount,
		OvertimePay:        e.OvertimePay,

		EmployeeInsurance: e.EmployeeInsurance,
		LoanPayment:       e.LoanPayment,
		AdvanceAmount:     e.AdvanceAmount,
		MobileBill:        e.MobileBill,
		LeaveDeduction:    e.LeaveDeduction,
		PenaltyAmount:     e.PenaltyAmount,

		Gross:           e.Gross,
		TotalDeductions: e.TotalDeductions,
		NetSalary:       e.NetSalary,
		TotalEarnings:   e.TotalEarnings(),

		EmployerSocialInsurance: e.EmployerSocialInsurance,
		HealthInsurance:         e.HealthInsurance,
		IncomeTax:               e.IncomeTax,
	}
	if e.EmployeeName != nil {
		resp.EmployeeName = *e.EmployeeName
	}
	if e.EmployeeCode != nil {
		resp.EmployeeCode = *e.EmployeeCode
	}
	return resp
}
