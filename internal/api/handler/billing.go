package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nolan/scribecloud/internal/api/middleware"
	"github.com/nolan/scribecloud/internal/api/response"
	"github.com/nolan/scribecloud/internal/service"
)

// BillingHandler handles billing endpoints.
type BillingHandler struct {
	billing *service.BillingService
	ledger  *service.LedgerService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billing *service.BillingService, ledger *service.LedgerService) *BillingHandler {
	return &BillingHandler{billing: billing, ledger: ledger}
}

type checkoutRequest struct {
	Pack string `json:"pack"`
}

// Packs handles GET /billing/packs.
func (h *BillingHandler) Packs(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.billing.Packs())
}

// CreateCheckout handles POST /billing/checkout.
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Pack == "" {
		req.Pack = "starter"
	}

	url, err := h.billing.CreateCheckoutSession(r.Context(), userID, req.Pack)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPack) {
			response.Error(w, http.StatusBadRequest, "unknown token pack")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"url": url})
}

// Webhook handles POST /billing/webhook. Signature and metadata
// failures are 4xx and never retried by Stripe; everything else is a
// 5xx so the event is redelivered (replay-safe via the unique session id).
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 65536))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	if err := h.billing.HandleWebhookEvent(r.Context(), payload, sigHeader); err != nil {
		switch {
		case errors.Is(err, service.ErrWebhookSignature):
			response.Error(w, http.StatusBadRequest, "invalid signature")
		case errors.Is(err, service.ErrWebhookMetadata), errors.Is(err, service.ErrUserNotFound):
			response.Error(w, http.StatusBadRequest, "invalid event metadata")
		default:
			response.Error(w, http.StatusInternalServerError, "webhook processing failed")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"received": true})
}

// History handles GET /billing/history.
func (h *BillingHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	entries, err := h.ledger.GetSpendingHistory(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to get history")
		return
	}

	response.JSON(w, http.StatusOK, entries)
}
