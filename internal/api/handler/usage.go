package handler

import (
	"net/http"

	"github.com/nolan/scribecloud/internal/api/response"
	"github.com/nolan/scribecloud/internal/fingerprint"
	"github.com/nolan/scribecloud/internal/service"
)

// UsageHandler serves the anonymous free-tier check.
type UsageHandler struct {
	ledger *service.LedgerService
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(ledger *service.LedgerService) *UsageHandler {
	return &UsageHandler{ledger: ledger}
}

// Check handles GET /usage. Identity comes from request metadata, not
// from a parameter.
func (h *UsageHandler) Check(w http.ResponseWriter, r *http.Request) {
	fp, ip, ua := fingerprint.FromRequest(r)

	status, err := h.ledger.CheckAnonymousLimit(r.Context(), fp, ip, ua)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to check usage")
		return
	}

	response.JSON(w, http.StatusOK, status)
}
