package training

import (
	"context"
	"testing"
	"time"

	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/employee"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/training"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeTrainingRepo struct {
	courses map[string]training.Course
	debts   map[string]training.Debt
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{
		courses: make(map[string]training.Course),
		debts:   make(map[string]training.Debt),
	}
}

func (r *fakeTrainingRepo) CreateCourse(_ context.Context, c training.Course) (training.Course, error) {
	r.courses[c.ID] = c
	return c, nil
}

func (r *fakeTrainingRepo) GetCourseByID(_ context.Context, id string) (training.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return training.Course{}, training.ErrCourseNotFound
	}
	return c, nil
}

func (r *fakeTrainingRepo) ListCoursesByEmployee(_ context.Context, employeeID string) ([]training.Course, error) {
	var result []training.Course
	for _, c := range r.courses {
		if c.EmployeeID == employeeID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeTrainingRepo) MarkCourseTaken(_ context.Context, c training.Course, debt *training.Debt) (training.Course, error) {
	if _, ok := r.courses[c.ID]; !ok {
		return training.Course{}, training.ErrCourseNotFound
	}
	r.courses[c.ID] = c
	if debt != nil {
		r.debts[debt.ID] = *debt
	}
	return c, nil
}

func (r *fakeTrainingRepo) GetDebtByCourse(_ context.Context, courseID string) (training.Debt, error) {
	for _, d := range r.debts {
		if d.CourseID == courseID {
			return d, nil
		}
	}
	return training.Debt{}, training.ErrDebtNotFound
}

func (r *fakeTrainingRepo) ListDebtsByEmployee(_ context.Context, employeeID string) ([]training.Debt, error) {
	var result []training.Debt
	for _, d := range r.debts {
		if d.EmployeeID == employeeID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeTrainingRepo) ListActiveDebts(_ context.Context, asOf time.Time) ([]training.Debt, error) {
	var result []training.Debt
	for _, d := range r.debts {
		if !d.Expired(asOf) {
			result = append(result, d)
		}
	}
	return result, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range r.employees {
		result = append(result, e)
	}
	return result, nil
}

func newFixtures() (*fakeTrainingRepo, *fakeEmployeeRepo) {
	trainingRepo := newFakeTrainingRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Test Employee"},
	}}
	return trainingRepo, employeeRepo
}

// ===== TESTS =====

func TestTrainingService_AssignCourse(t *testing.T) {
	trainingRepo, employeeRepo := newFixtures()
	svc := NewTrainingService(trainingRepo, employeeRepo)

	planned := "2026-03-01"
	resp, err := svc.AssignCourse(context.Background(), training.AssignCourseRequest{
		EmployeeID:  "emp-1",
		CourseName:  "Forklift Certification",
		Cost:        decimal.NewFromInt(1500),
		PlannedDate: &planned,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(training.CourseStatusPlanned), resp.Status)
	require.NotNil(t, resp.PlannedDate)
	assert.Equal(t, "2026-03-01", *resp.PlannedDate)
	assert.Nil(t, resp.ActualDate)
	assert.Empty(t, trainingRepo.debts, "assignment must not create a debt")
}

func TestTrainingService_AssignCourse_UnknownEmployee(t *testing.T) {
	trainingRepo, employeeRepo := newFixtures()
	svc := NewTrainingService(trainingRepo, employeeRepo)

	_, err := svc.AssignCourse(context.Background(), training.AssignCourseRequest{
		EmployeeID: "emp-missing",
		CourseName: "Forklift Certification",
		Cost:       decimal.NewFromInt(1500),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, trainingRepo.courses)
}

func TestTrainingService_RecordActualCourse_CreatesDebt(t *testing.T) {
	trainingRepo, employeeRepo := newFixtures()
	svc := NewTrainingService(trainingRepo, employeeRepo)

	assigned, err := svc.AssignCourse(context.Background(), training.AssignCourseRequest{
		EmployeeID: "emp-1",
		CourseName: "Forklift Certification",
		Cost:       decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	resp, err := svc.RecordActualCourse(context.Background(), training.RecordActualRequest{
		CourseID:   assigned.ID,
		ActualDate: "2026-02-10",
	})
	require.NoError(t, err)

	assert.Equal(t, string(training.CourseStatusTaken), resp.Status)
	require.NotNil(t, resp.ActualDate)
	assert.Equal(t, "2026-02-10", *resp.ActualDate)

	debts, err := svc.ListDebtsByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, assigned.ID, debts[0].CourseID)
	assert.True(t, debts[0].Cost.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "2029-02-10", debts[0].ExpiryDate, "expiry is three years after the actual date")
}

func TestTrainingService_RecordActualCourse_ZeroCostNoDebt(t *testing.T) {
	trainingRepo, employeeRepo := newFixtures()
	svc := NewTrainingService(trainingRepo, employeeRepo)

	assigned, err := svc.AssignCourse(context.Background(), training.AssignCourseRequest{
		EmployeeID: "emp-1",
		CourseName: "Internal Onboarding",
		Cost:       decimal.Zero,
	})
	require.NoError(t, err)

	resp, err := svc.RecordActualCourse(context.Background(), training.RecordActualRequest{
		CourseID:   assigned.ID,
		ActualDate: "2026-02-10",
	})
	require.NoError(t, err)

	assert.Equal(t, string(training.CourseStatusTaken), resp.Status)
	assert.Empty(t, trainingRepo.debts)
}

func TestTrainingService_RecordActualCourse_AlreadyTaken(t *testing.T) {
	trainingRepo, employeeRepo := newFixtures()
	svc := NewTrainingService(trainingRepo, employeeRepo)

	assigned, err := svc.AssignCourse(context.Background(), training.AssignCourseRequest{
		EmployeeID: "emp-1",
		CourseName: "Forklift Certification",
		Cost:       decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	_, err = svc.RecordActualCourse(context.Background(), training.RecordActualRequest{
		CourseID:   assigned.ID,
		ActualDate: "2026-02-10",
	})
	require.NoError(t, err)

	_, err = svc.RecordActualCourse(context.Background(), training.RecordActualRequest{
		CourseID:   assigned.ID,
		ActualDate: "2026-02-11",
	})
	assert.ErrorIs(t, err, training.ErrCourseAlreadyTaken)
	assert.Len(t, trainingRepo.debts, 1, "debt is created exactly once")
}

func TestTrainingService_ListActiveDebts(t *testing.T) {
	trainingRepo, employeeRepo := newFixtures()
	svc := NewTrainingService(trainingRepo, employeeRepo)

	seedDebt := func(id string, actual time.Time) {
		trainingRepo.debts[id] = training.Debt{
			ID:         id,
			EmployeeID: "emp-1",
			CourseID:   "course-" + id,
			Cost:       decimal.NewFromInt(500),
			ActualDate: actual,
			ExpiryDate: actual.AddDate(training.DebtTermYears, 0, 0),
		}
	}
	seedDebt("debt-live", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	seedDebt("debt-expired", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC))

	active, err := svc.ListActiveDebts(context.Background(), time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, active, 1)
	assert.Equal(t, "debt-live", active[0].ID)
}
