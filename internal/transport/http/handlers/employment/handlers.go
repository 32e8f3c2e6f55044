package employmenthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"epms/internal/domain/employment"
	"epms/internal/domain/identity"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
	"epms/internal/transport/http/shared"
)

type Handler struct {
	Employments *employment.Service
}

func NewHandler(employments *employment.Service) *Handler {
	return &Handler{Employments: employments}
}

type createRequest struct {
	EmployeeCode string  `json:"employeeCode"`
	BaseSalary   float64 `json:"baseSalary"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
}

type updateRequest struct {
	BaseSalary float64 `json:"baseSalary"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Status     string  `json:"status"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeCode", payload.EmployeeCode, "employee code is required")
	v.Positive("baseSalary", payload.BaseSalary, "base salary must be positive")
	v.Required("position", payload.Position, "position is required")
	v.Required("department", payload.Department, "department is required")
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Employments.Create(r.Context(), requestctx.GetPrincipal(r.Context()), employment.CreateParams{
		EmployeeCode: payload.EmployeeCode,
		BaseSalary:   payload.BaseSalary,
		Position:     payload.Position,
		Department:   payload.Department,
	})
	if err != nil {
		writeEmploymentError(w, requestID, err)
		return
	}
	api.Created(w, emp, requestID)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	code := chi.URLParam(r, "code")

	var payload updateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Positive("baseSalary", payload.BaseSalary, "base salary must be positive")
	v.Required("position", payload.Position, "position is required")
	v.Required("department", payload.Department, "department is required")
	if payload.Status != "" && payload.Status != employment.StatusActive && payload.Status != employment.StatusInactive {
		v.Add("status", "must be ACTIVE or INACTIVE")
	}
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Employments.Update(r.Context(), requestctx.GetPrincipal(r.Context()), code, employment.UpdateParams{
		BaseSalary: payload.BaseSalary,
		Position:   payload.Position,
		Department: payload.Department,
		Status:     payload.Status,
	})
	if err != nil {
		writeEmploymentError(w, requestID, err)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	emp, err := h.Employments.Get(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "code"))
	if err != nil {
		writeEmploymentError(w, requestID, err)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	list, err := h.Employments.ListActive(r.Context(), requestctx.GetPrincipal(r.Context()))
	if err != nil {
		writeEmploymentError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleActiveByEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	emp, err := h.Employments.ActiveByEmployee(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "employeeCode"))
	if err != nil {
		writeEmploymentError(w, requestID, err)
		return
	}
	api.Success(w, emp, requestID)
}

func writeEmploymentError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case errors.Is(err, identity.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, employment.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employment not found", requestID)
	case errors.Is(err, employment.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	case errors.Is(err, employment.ErrActiveExists):
		api.Fail(w, http.StatusConflict, "active_employment_exists", "employee already has an active employment", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
