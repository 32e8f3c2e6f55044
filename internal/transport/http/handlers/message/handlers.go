package messagehandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"epms/internal/domain/identity"
	"epms/internal/domain/message"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
)

type Handler struct {
	Messages *message.Service
}

func NewHandler(messages *message.Service) *Handler {
	return &Handler{Messages: messages}
}

func (h *Handler) HandleListByEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	list, err := h.Messages.ListByEmployee(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "employeeCode"))
	if err != nil {
		writeMessageError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleListUnread(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	list, err := h.Messages.ListUnread(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "employeeCode"))
	if err != nil {
		writeMessageError(w, requestID, err)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) HandleCountUnread(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	count, err := h.Messages.CountUnread(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "employeeCode"))
	if err != nil {
		writeMessageError(w, requestID, err)
		return
	}
	api.Success(w, map[string]int{"unread": count}, requestID)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	msg, err := h.Messages.MarkRead(r.Context(), requestctx.GetPrincipal(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeMessageError(w, requestID, err)
		return
	}
	api.Success(w, msg, requestID)
}

func writeMessageError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case errors.Is(err, identity.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, message.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "message not found", requestID)
	case errors.Is(err, message.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
