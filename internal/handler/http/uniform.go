package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/uniform"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/handler/http/response"
)

type UniformHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	DepreciationReport(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UniformHandlerImpl struct {
	uniformService uniform.UniformService
}

func NewUniformHandler(uniformService uniform.UniformService) UniformHandler {
	return &UniformHandlerImpl{uniformService: uniformService}
}

func (h *UniformHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req uniform.CreateIssuanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateIssuance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.uniformService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Uniform issuance recorded successfully", created)
}

func (h *UniformHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Issuance ID is required", nil)
		return
	}

	i, err := h.uniformService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, i)
}

func (h *UniformHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	issuances, err := h.uniformService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, issuances)
}

func (h *UniformHandlerImpl) DepreciationReport(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Query parameter 'as_of' must be in YYYY-MM-DD format", nil)
			return
		}
		asOf = parsed
	}

	rows, err := h.uniformService.DepreciationReport(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func (h *UniformHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Issuance ID is required", nil)
		return
	}

	if err := h.uniformService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Uniform issuance deleted", nil)
}
