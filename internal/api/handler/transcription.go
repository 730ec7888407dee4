package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/nolan/scribecloud/internal/api/middleware"
	"github.com/nolan/scribecloud/internal/api/response"
	"github.com/nolan/scribecloud/internal/fingerprint"
	"github.com/nolan/scribecloud/internal/service"
)

// TranscriptionHandler handles transcription job endpoints.
type TranscriptionHandler struct {
	svc *service.TranscriptionService
}

// NewTranscriptionHandler creates a new TranscriptionHandler.
func NewTranscriptionHandler(svc *service.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{svc: svc}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type createTranscriptionRequest struct {
	SourceURL string `json:"sourceUrl"`
	Language  string `json:"language"`
}

// Create handles POST /transcriptions. Authenticated users spend a
// token; anonymous clients spend a free use keyed by fingerprint.
func (h *TranscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTranscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		job *service.TranscriptionResponse
		err error
	)
	if userID := middleware.UserIDFromContext(r.Context()); userID != 0 {
		job, err = h.svc.CreateForUser(r.Context(), userID, req.SourceURL, req.Language)
	} else {
		fp, ip, ua := fingerprint.FromRequest(r)
		job, err = h.svc.CreateForAnonymous(r.Context(), fp, ip, ua, req.SourceURL, req.Language)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSourceURL):
			response.Error(w, http.StatusBadRequest, "invalid source url")
		case errors.Is(err, service.ErrInsufficientTokens):
			response.Error(w, http.StatusPaymentRequired, "insufficient tokens")
		case errors.Is(err, service.ErrFreeTierExhausted):
			response.Error(w, http.StatusForbidden, "free tier exhausted, sign in to continue")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to create transcription")
		}
		return
	}

	response.JSON(w, http.StatusCreated, job)
}

func (h *TranscriptionHandler) load(r *http.Request) (*service.TranscriptionResponse, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return nil, service.ErrTranscriptionNotFound
	}
	fp, _, _ := fingerprint.FromRequest(r)
	return h.svc.Get(r.Context(), id, middleware.UserIDFromContext(r.Context()), fp)
}

// Get handles GET /transcriptions/{id}.
func (h *TranscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.load(r)
	if err != nil {
		if errors.Is(err, service.ErrTranscriptionNotFound) {
			response.Error(w, http.StatusNotFound, "transcription not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get transcription")
		return
	}
	response.JSON(w, http.StatusOK, job)
}

// List handles GET /transcriptions.
func (h *TranscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	jobs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list transcriptions")
		return
	}
	response.JSON(w, http.StatusOK, jobs)
}

// Share handles POST /transcriptions/{id}/share.
func (h *TranscriptionHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "invalid transcription id")
		return
	}

	token, err := h.svc.Share(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTranscriptionNotFound):
			response.Error(w, http.StatusNotFound, "transcription not found")
		case errors.Is(err, service.ErrNotShareable):
			response.Error(w, http.StatusConflict, "only completed transcriptions can be shared")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to share transcription")
		}
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"shareToken": token})
}

// GetShared handles GET /shared/{token} — public, no auth.
func (h *TranscriptionHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		response.Error(w, http.StatusBadRequest, "missing share token")
		return
	}

	shared, err := h.svc.GetShared(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrTranscriptionNotFound) {
			response.Error(w, http.StatusNotFound, "shared transcript not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to get shared transcript")
		return
	}
	response.JSON(w, http.StatusOK, shared)
}

// Events handles GET /transcriptions/{id}/events: a WebSocket that
// pushes job status until it reaches a terminal state.
func (h *TranscriptionHandler) Events(w http.ResponseWriter, r *http.Request) {
	job, err := h.load(r)
	if err != nil {
		response.Error(w, http.StatusNotFound, "transcription not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	userID := middleware.UserIDFromContext(r.Context())
	fp, _, _ := fingerprint.FromRequest(r)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(job); err != nil {
			return
		}
		if job.Status == service.StatusCompleted || job.Status == service.StatusFailed {
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, job.Status))
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		job, err = h.svc.Get(r.Context(), job.ID, userID, fp)
		if err != nil {
			return
		}
	}
}
