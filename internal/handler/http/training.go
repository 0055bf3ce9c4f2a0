package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/training"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/handler/http/response"
)

type TrainingHandler interface {
	AssignCourse(w http.ResponseWriter, r *http.Request)
	GetCourse(w http.ResponseWriter, r *http.Request)
	ListCoursesByEmployee(w http.ResponseWriter, r *http.Request)
	RecordActual(w http.ResponseWriter, r *http.Request)
	ListDebtsByEmployee(w http.ResponseWriter, r *http.Request)
	ListActiveDebts(w http.ResponseWriter, r *http.Request)
}

type TrainingHandlerImpl struct {
	trainingService training.TrainingService
}

func NewTrainingHandler(trainingService training.TrainingService) TrainingHandler {
	return &TrainingHandlerImpl{trainingService: trainingService}
}

func (h *TrainingHandlerImpl) AssignCourse(w http.ResponseWriter, r *http.Request) {
	var req training.AssignCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignCourse decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.trainingService.AssignCourse(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Training course assigned successfully", created)
}

func (h *TrainingHandlerImpl) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Course ID is required", nil)
		return
	}

	c, err := h.trainingService.GetCourse(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c)
}

func (h *TrainingHandlerImpl) ListCoursesByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	courses, err := h.trainingService.ListCoursesByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, courses)
}

func (h *TrainingHandlerImpl) RecordActual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Course ID is required", nil)
		return
	}

	var req training.RecordActualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordActual decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CourseID = id

	updated, err := h.trainingService.RecordActualCourse(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training course recorded as taken", updated)
}

func (h *TrainingHandlerImpl) ListDebtsByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	debts, err := h.trainingService.ListDebtsByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, debts)
}

func (h *TrainingHandlerImpl) ListActiveDebts(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Query parameter 'as_of' must be in YYYY-MM-DD format", nil)
			return
		}
		asOf = parsed
	}

	debts, err := h.trainingService.ListActiveDebts(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, debts)
}
