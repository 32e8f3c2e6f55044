package paysliphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"epms/internal/domain/employment"
	"epms/internal/domain/identity"
	"epms/internal/domain/payslip"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
	"epms/internal/transport/http/shared"
)

type Handler struct {
	Payslips    *payslip.Service
	Employments *employment.Service
}

func NewHandler(payslips *payslip.Service, employments *employment.Service) *Handler {
	return &Handler{Payslips: payslips, Employments: employments}
}

type generateRequest struct {
	EmployeeCode string `json:"employeeCode"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

type generateAllRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload generateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeCode", payload.EmployeeCode, "employee code is required")
	v.IntRange("month", payload.Month, 1, 12, "month must be between 1 and 12")
	if v.Reject(w, requestID) {
		return
	}

	p, err := h.Payslips.Generate(r.Context(), requestctx.GetPrincipal(r.Context()), payload.EmployeeCode, payload.Month, payload.Year)
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}
	api.Created(w, p, requestID)
}

// HandleGenerateAll runs generation for every employee holding an active
// employment, reporting per-employee failures without failing the batch.
func (h *Handler) HandleGenerateAll(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	caller := requestctx.GetPrincipal(r.Context())

	var payload generateAllRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.IntRange("month", payload.Month, 1, 12, "month must be between 1 and 12")
	if v.Reject(w, requestID) {
		return
	}

	active, err := h.Employments.ListActive(r.Context(), caller)
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}
	codes := make([]string, 0, len(active))
	for _, emp := range active {
		codes = append(codes, emp.EmployeeCode)
	}

	result, err := h.Payslips.GenerateAll(r.Context(), caller, codes, payload.Month, payload.Year)
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	p, err := h.Payslips.Approve(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}
	api.Success(w, p, requestID)
}

func (h *Handler) HandleListByEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	list, err := h.Payslips.ListByEmployee(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "employeeCode"))
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "month and year query parameters are required", requestID)
		return
	}

	list, err := h.Payslips.ListPending(r.Context(), requestctx.GetPrincipal(r.Context()), month, year)
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	doc, filename, err := h.Payslips.Download(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writePayslipError(w, requestID, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func writePayslipError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case errors.Is(err, identity.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, payslip.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "invalid payslip period", requestID)
	case errors.Is(err, payslip.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", requestID)
	case errors.Is(err, payslip.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "active employee not found", requestID)
	case errors.Is(err, payslip.ErrEmploymentNotFound):
		api.Fail(w, http.StatusNotFound, "employment_not_found", "no active employment for employee", requestID)
	case errors.Is(err, payslip.ErrAlreadyExists):
		api.Fail(w, http.StatusConflict, "already_exists", "payslip already exists for this month and year", requestID)
	case errors.Is(err, payslip.ErrAlreadyPaid):
		api.Fail(w, http.StatusConflict, "already_paid", "payslip has already been paid", requestID)
	case errors.Is(err, payslip.ErrRenderFailed):
		api.Fail(w, http.StatusBadGateway, "render_failed", "failed to render payslip document", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
