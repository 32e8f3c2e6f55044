package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"epms/internal/domain/account"
	"epms/internal/domain/employee"
	"epms/internal/domain/identity"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
	"epms/internal/transport/http/shared"
)

type Handler struct {
	Accounts *account.Service
}

func NewHandler(accounts *account.Service) *Handler {
	return &Handler{Accounts: accounts}
}

type registerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	DateOfBirth string `json:"dateOfBirth"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an employee-role account. The first account ever
// registered bootstraps into an admin regardless of the requested role.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, identity.RoleEmployee)
}

func (h *Handler) HandleRegisterEmployee(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, identity.RoleEmployee)
}

func (h *Handler) HandleRegisterManager(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, identity.RoleManager)
}

func (h *Handler) HandleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, identity.RoleAdmin)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, role string) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("email", payload.Email, "email is required")
	v.Email("email", payload.Email)
	v.Required("password", payload.Password, "password is required")
	v.MinLength("password", payload.Password, 8, "password must be at least 8 characters")

	input := account.RegisterInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Mobile:    payload.Mobile,
		Password:  payload.Password,
	}
	if payload.DateOfBirth != "" {
		if dob, ok := v.Date("dateOfBirth", payload.DateOfBirth); ok {
			input.DateOfBirth = &dob
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Accounts.Register(r.Context(), requestctx.GetPrincipal(r.Context()), input, role)
	if err != nil {
		writeAccountError(w, requestID, err)
		return
	}
	api.Created(w, emp, requestID)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email, "email is required")
	v.Required("password", payload.Password, "password is required")
	if v.Reject(w, requestID) {
		return
	}

	out, err := h.Accounts.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeAccountError(w, requestID, err)
		return
	}
	api.Success(w, map[string]any{
		"token":     out.Token,
		"expiresAt": out.ExpiresAt.Format(time.RFC3339),
		"employee":  out.Employee,
	}, requestID)
}

func writeAccountError(w http.ResponseWriter, requestID string, err error) {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
	case errors.Is(err, account.ErrInvalidRole):
		api.Fail(w, http.StatusBadRequest, "invalid_role", "invalid role", requestID)
	case errors.Is(err, employee.ErrEmailTaken):
		api.Fail(w, http.StatusConflict, "email_taken", "email is already registered", requestID)
	case errors.Is(err, identity.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
