package advance

import (
	"context"
	"testing"
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/advance"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAdvanceRepo struct {
	advances map[string]advance.Advance
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{advances: make(map[string]advance.Advance)}
}

func (r *fakeAdvanceRepo) Create(_ context.Context, a advance.Advance) (advance.Advance, error) {
	r.advances[a.ID] = a
	return a, nil
}

func (r *fakeAdvanceRepo) GetByID(_ context.Context, id string) (advance.Advance, error) {
	a, ok := r.advances[id]
	if !ok {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	return a, nil
}

func (r *fakeAdvanceRepo) GetActiveForMonth(_ context.Context, employeeID string, p period.Period) (advance.Advance, error) {
	for _, a := range r.advances {
		if a.EmployeeID == employeeID && a.DeductionMonth.Equal(p) && a.Status == advance.AdvanceStatusApproved {
			return a, nil
		}
	}
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (r *fakeAdvanceRepo) ExistsForMonth(_ context.Context, employeeID string, p period.Period) (bool, error) {
	for _, a := range r.advances {
		if a.EmployeeID == employeeID && a.DeductionMonth.Equal(p) && a.Status != advance.AdvanceStatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdvanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]advance.Advance, error) {
	var result []advance.Advance
	for _, a := range r.advances {
		if a.EmployeeID == employeeID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAdvanceRepo) UpdateStatus(_ context.Context, id string, status advance.AdvanceStatus) (advance.Advance, error) {
	a, ok := r.advances[id]
	if !ok {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	a.Status = status
	r.advances[id] = a
	return a, nil
}

func (r *fakeAdvanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.advances[id]; !ok {
		return advance.ErrAdvanceNotFound
	}
	delete(r.advances, id)
	return nil
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id == "emp-1" {
		return employee.Employee{ID: id, IsActive: true}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	return []employee.Employee{{ID: "emp-1", IsActive: true}}, nil
}

func newTestService() (advance.AdvanceService, *fakeAdvanceRepo) {
	repo := newFakeAdvanceRepo()
	return NewAdvanceService(repo, fakeEmployeeRepo{}), repo
}

// ===== TESTS =====

func TestAdvanceService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(500),
		DeductionMonth: "2026-03",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "2026-03", created.DeductionMonth.String())
}

func TestAdvanceService_Create_DuplicateMonth(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	req := advance.CreateAdvanceRequest{
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(500),
		DeductionMonth: "2026-03",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, advance.ErrAdvanceExistsForMonth)
}

func TestAdvanceService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	cases := []advance.CreateAdvanceRequest{
		{EmployeeID: "", Amount: decimal.NewFromInt(500), DeductionMonth: "2026-03"},
		{EmployeeID: "emp-1", Amount: decimal.Zero, DeductionMonth: "2026-03"},
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(-10), DeductionMonth: "2026-03"},
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(500), DeductionMonth: "march"},
	}
	for i, req := range cases {
		_, err := svc.Create(ctx, req)
		assert.Error(t, err, "case %d", i)
	}
	assert.Empty(t, repo.advances)
}

func TestAdvanceService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(500),
		DeductionMonth: "2026-03",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	deducted, err := svc.MarkDeducted(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "deducted", deducted.Status)
}

func TestAdvanceService_IllegalTransitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(500),
		DeductionMonth: "2026-03",
	})
	require.NoError(t, err)

	// pending advances cannot be deducted
	_, err = svc.MarkDeducted(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrInvalidTransition)

	// rejected is terminal
	_, err = svc.Reject(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrInvalidTransition)
	_, err = svc.MarkDeducted(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrInvalidTransition)
}

func TestAdvanceService_DeductedIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(500),
		DeductionMonth: "2026-03",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.MarkDeducted(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.MarkDeducted(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrInvalidTransition)
	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, advance.ErrInvalidTransition)
}

func TestAdvanceService_GetActiveForMonth(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	march := period.Period{Year: 2026, Month: time.March}

	created, err := svc.Create(ctx, advance.CreateAdvanceRequest{
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(500),
		DeductionMonth: "2026-03",
	})
	require.NoError(t, err)

	// pending advances are not consumable
	_, err = svc.GetActiveForMonth(ctx, "emp-1", march)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)

	_, err = svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	active, err := svc.GetActiveForMonth(ctx, "emp-1", march)
	require.NoError(t, err)
	assert.True(t, active.Amount.Equal(decimal.NewFromInt(500)))

	// once deducted it disappears from the consumable view
	_, err = svc.MarkDeducted(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.GetActiveForMonth(ctx, "emp-1", march)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}
