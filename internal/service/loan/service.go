package loan

import (
	"context"

	"github.com/google/uuid"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/loan"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

type LoanServiceImpl struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LoanServiceImpl) Create(ctx context.Context, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return loan.LoanResponse{}, err
	}

	monthly := decimal.Zero
	if req.MonthlyPayment != nil {
		monthly = *req.MonthlyPayment
	}
	plan, err := PlanLoan(req.Amount, loan.CalculationMethod(req.CalculationMethod), req.InstallmentsCount, monthly)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	start, err := period.Parse(req.StartMonth)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	l := loan.Loan{
		ID:                uuid.NewString(),
		EmployeeID:        req.EmployeeID,
		Amount:            req.Amount,
		InstallmentsCount: plan.InstallmentsCount,
		MonthlyPayment:    plan.MonthlyPayment,
		PaidInstallments:  0,
		PaidAmount:        decimal.Zero,
		RemainingAmount:   req.Amount,
		StartMonth:        start,
		Status:            loan.LoanStatusActive,
		CalculationMethod: loan.CalculationMethod(req.CalculationMethod),
	}

	created, err := s.loanRepo.Create(ctx, l)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *LoanServiceImpl) Get(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return mapToResponse(l), nil
}

func (s *LoanServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		result = append(result, mapToResponse(l))
	}
	return result, nil
}

// RecordPayment records one installment. The final installment adds only the
// true remainder so PaidAmount lands exactly on Amount. Calling it on a
// completed loan is a no-op that returns the current state.
func (s *LoanServiceImpl) RecordPayment(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	if l.IsComplete() {
		return mapToResponse(l), nil
	}

	payment := l.NextInstallmentAmount()
	l.PaidInstallments++
	l.PaidAmount = l.PaidAmount.Add(payment)
	l.RemainingAmount = l.Amount.Sub(l.PaidAmount)
	if l.RemainingAmount.IsNegative() {
		l.RemainingAmount = decimal.Zero
	}
	if l.IsComplete() {
		l.Status = loan.LoanStatusCompleted
	}

	updated, err := s.loanRepo.Update(ctx, l)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return mapToResponse(updated), nil
}

// Edit replans the loan with a new amount and calculation input. Paid
// history is preserved; the remaining amount is reset against the new
// amount.
func (s *LoanServiceImpl) Edit(ctx context.Context, req loan.EditLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	l, err := s.loanRepo.GetByID(ctx, req.ID)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	monthly := decimal.Zero
	if req.MonthlyPayment != nil {
		monthly = *req.MonthlyPayment
	}
	plan, err := PlanLoan(req.Amount, loan.CalculationMethod(req.CalculationMethod), req.InstallmentsCount, monthly)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	l.Amount = req.Amount
	l.CalculationMethod = loan.CalculationMethod(req.CalculationMethod)
	l.InstallmentsCount = plan.InstallmentsCount
	l.MonthlyPayment = plan.MonthlyPayment
	l.RemainingAmount = l.Amount.Sub(l.PaidAmount)
	if l.RemainingAmount.IsNegative() {
		l.RemainingAmount = decimal.Zero
	}
	if l.IsComplete() {
		l.Status = loan.LoanStatusCompleted
	} else {
		l.Status = loan.LoanStatusActive
	}

	updated, err := s.loanRepo.Update(ctx, l)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *LoanServiceImpl) Delete(ctx context.Context, id string) error {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.Status == loan.LoanStatusCompleted {
		return loan.ErrLoanCompleted
	}
	return s.loanRepo.Delete(ctx, id)
}

func (s *LoanServiceImpl) Schedule(ctx context.Context, id string) ([]loan.InstallmentEntryResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]loan.InstallmentEntryResponse, 0, l.InstallmentsCount)
	for entry := range InstallmentSchedule(l) {
		result = append(result, loan.InstallmentEntryResponse{
			Number:         entry.Number,
			PeriodLabel:    entry.PeriodLabel,
			Amount:         entry.Amount,
			CumulativePaid: entry.CumulativePaid,
			Remaining:      entry.Remaining,
			Status:         string(entry.Status),
		})
	}
	return result, nil
}

func mapToResponse(l loan.Loan) loan.LoanResponse {
	return loan.LoanResponse{
		ID:                l.ID,
		EmployeeID:        l.EmployeeID,
		Amount:            l.Amount,
		InstallmentsCount: l.InstallmentsCount,
		MonthlyPayment:    l.MonthlyPayment,
		PaidInstallments:  l.PaidInstallments,
		PaidAmount:        l.PaidAmount,
		RemainingAmount:   l.RemainingAmount,
		StartMonth:        l.StartMonth,
		Status:            string(l.Status),
		CalculationMethod: string(l.CalculationMethod),
	}
}
