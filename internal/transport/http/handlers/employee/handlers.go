package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"epms/internal/domain/employee"
	"epms/internal/domain/identity"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
	"epms/internal/transport/http/shared"
)

type Handler struct {
	Employees *employee.Service
}

func NewHandler(employees *employee.Service) *Handler {
	return &Handler{Employees: employees}
}

type updateRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Mobile      string `json:"mobile"`
	DateOfBirth string `json:"dateOfBirth"`
	Password    string `json:"password"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	p := shared.ParsePagination(r, 50, 200)

	list, err := h.Employees.List(r.Context(), requestctx.GetPrincipal(r.Context()), p.Limit, p.Offset)
	if err != nil {
		writeEmployeeError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	code := chi.URLParam(r, "code")

	emp, err := h.Employees.GetByCode(r.Context(), requestctx.GetPrincipal(r.Context()), code)
	if err != nil {
		writeEmployeeError(w, requestID, err)
		return
	}
	api.Success(w, emp, requestID)
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
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.MinLength("password", payload.Password, 8, "password must be at least 8 characters")

	params := employee.UpdateParams{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Mobile:    payload.Mobile,
	}
	if payload.DateOfBirth != "" {
		if dob, ok := v.Date("dateOfBirth", payload.DateOfBirth); ok {
			params.DateOfBirth = &dob
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Employees.Update(r.Context(), requestctx.GetPrincipal(r.Context()), code, params, payload.Password)
	if err != nil {
		writeEmployeeError(w, requestID, err)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	code := chi.URLParam(r, "code")

	if err := h.Employees.Delete(r.Context(), requestctx.GetPrincipal(r.Context()), code); err != nil {
		writeEmployeeError(w, requestID, err)
		return
	}
	api.Success(w, map[string]string{"code": code, "status": employee.StatusDisabled}, requestID)
}

func writeEmployeeError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case errors.Is(err, identity.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, employee.ErrEmailTaken):
		api.Fail(w, http.StatusConflict, "email_taken", "email is already registered", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
