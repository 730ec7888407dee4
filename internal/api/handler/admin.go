package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nolan/scribecloud/internal/api/middleware"
	"github.com/nolan/scribecloud/internal/api/response"
	"github.com/nolan/scribecloud/internal/ent"
	"github.com/nolan/scribecloud/internal/service"
)

// AdminHandler handles the admin surface. Every operation goes through
// the permission gate before touching data.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// gate runs the admin permission check and writes the rejection when
// it fails. Returns the admin's user record on success.
func (h *AdminHandler) gate(w http.ResponseWriter, r *http.Request) (*ent.User, bool) {
	admin, err := h.admin.CheckAdminPermission(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			response.Error(w, http.StatusUnauthorized, "not authenticated")
		case errors.Is(err, service.ErrNotAdmin):
			response.Error(w, http.StatusForbidden, "admin permission required")
		default:
			response.Error(w, http.StatusInternalServerError, "permission check failed")
		}
		return nil, false
	}
	return admin, true
}

func userIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid user id")
	}
	return id, nil
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.gate(w, r); !ok {
		return
	}

	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// GetUserTranscriptions handles GET /admin/users/{id}/transcriptions.
func (h *AdminHandler) GetUserTranscriptions(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.gate(w, r); !ok {
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	jobs, err := h.admin.GetUserTranscriptions(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get transcriptions")
		return
	}
	response.JSON(w, http.StatusOK, jobs)
}

// GetUserSpendingHistory handles GET /admin/users/{id}/spending.
func (h *AdminHandler) GetUserSpendingHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.gate(w, r); !ok {
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.admin.GetUserSpendingHistory(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get spending history")
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

// UpdateUser handles PATCH /admin/users/{id}.
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.gate(w, r)
	if !ok {
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.admin.UpdateUser(r.Context(), admin.ID, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	if updated == nil {
		updated = []string{}
	}
	response.JSON(w, http.StatusOK, map[string]any{"updated": updated})
}

type compensateRequest struct {
	UserID          int    `json:"userId"`
	TokensToGrant   int    `json:"tokensToGrant"`
	Reason          string `json:"reason"`
	StripeSessionID string `json:"stripeSessionId"`
}

// Compensate handles POST /admin/compensate.
func (h *AdminHandler) Compensate(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.gate(w, r)
	if !ok {
		return
	}

	var req compensateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 || req.TokensToGrant <= 0 {
		response.Error(w, http.StatusBadRequest, "userId and a positive tokensToGrant are required")
		return
	}

	entry, err := h.admin.CompensatePaymentFailure(r.Context(), admin.ID, req.UserID, req.TokensToGrant, req.Reason, req.StripeSessionID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to grant compensation")
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

// Impersonate handles POST /admin/impersonate/{id}.
func (h *AdminHandler) Impersonate(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.gate(w, r)
	if !ok {
		return
	}

	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.admin.Impersonate(r.Context(), admin.ID, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to issue impersonation token")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}
