package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/domain/mobilebill"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/handler/http/response"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/period"
)

type MobileBillHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MobileBillHandlerImpl struct {
	billService mobilebill.BillService
}

func NewMobileBillHandler(billService mobilebill.BillService) MobileBillHandler {
	return &MobileBillHandlerImpl{billService: billService}
}

func (h *MobileBillHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	var req mobilebill.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UploadMobileBills decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.billService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mobile bills uploaded", result)
}

func (h *MobileBillHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	b, err := h.billService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, b)
}

func (h *MobileBillHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	p, err := period.Parse(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be in YYYY-MM format", nil)
		return
	}

	bills, err := h.billService.ListByMonth(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bills)
}

func (h *MobileBillHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	if err := h.billService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mobile bill deleted", nil)
}
