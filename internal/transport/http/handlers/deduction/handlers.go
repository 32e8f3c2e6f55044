package deductionhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"epms/internal/domain/deduction"
	"epms/internal/domain/identity"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
	"epms/internal/transport/http/shared"
)

type Handler struct {
	Deductions *deduction.Service
}

func NewHandler(deductions *deduction.Service) *Handler {
	return &Handler{Deductions: deductions}
}

type deductionRequest struct {
	DeductionName string  `json:"deductionName"`
	Percentage    float64 `json:"percentage"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	payload, ok := decodeDeduction(w, r, requestID)
	if !ok {
		return
	}

	ded, err := h.Deductions.Create(r.Context(), requestctx.GetPrincipal(r.Context()), payload.DeductionName, payload.Percentage)
	if err != nil {
		writeDeductionError(w, requestID, err)
		return
	}
	api.Created(w, ded, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	ded, err := h.Deductions.Get(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "code"))
	if err != nil {
		writeDeductionError(w, requestID, err)
		return
	}
	api.Success(w, ded, requestID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	list, err := h.Deductions.List(r.Context(), requestctx.GetPrincipal(r.Context()))
	if err != nil {
		writeDeductionError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleListForEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	list, err := h.Deductions.ListForEmployee(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "employeeCode"))
	if err != nil {
		writeDeductionError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	code := chi.URLParam(r, "code")

	payload, ok := decodeDeduction(w, r, requestID)
	if !ok {
		return
	}

	ded, err := h.Deductions.Update(r.Context(), requestctx.GetPrincipal(r.Context()), code, payload.DeductionName, payload.Percentage)
	if err != nil {
		writeDeductionError(w, requestID, err)
		return
	}
	api.Success(w, ded, requestID)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	code := chi.URLParam(r, "code")

	if err := h.Deductions.Delete(r.Context(), requestctx.GetPrincipal(r.Context()), code); err != nil {
		writeDeductionError(w, requestID, err)
		return
	}
	api.Success(w, map[string]string{"code": code}, requestID)
}

func decodeDeduction(w http.ResponseWriter, r *http.Request, requestID string) (deductionRequest, bool) {
	var payload deductionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return deductionRequest{}, false
	}

	v := shared.NewValidator()
	v.Required("deductionName", payload.DeductionName, "deduction name is required")
	if payload.Percentage < 0 || payload.Percentage > 100 {
		v.Add("percentage", "must be between 0 and 100")
	}
	if v.Reject(w, requestID) {
		return deductionRequest{}, false
	}
	return payload, true
}

func writeDeductionError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case errors.Is(err, identity.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, deduction.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "deduction not found", requestID)
	case errors.Is(err, deduction.ErrNameTaken):
		api.Fail(w, http.StatusConflict, "name_taken", "deduction name already exists", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
