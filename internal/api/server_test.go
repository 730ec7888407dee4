package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nolan/scribecloud/internal/auth"
	"github.com/nolan/scribecloud/internal/config"
	"github.com/nolan/scribecloud/internal/ent"
	"github.com/nolan/scribecloud/internal/ent/enttest"
	"github.com/nolan/scribecloud/internal/service"
	"github.com/nolan/scribecloud/internal/transcriber"

	_ "github.com/mattn/go-sqlite3"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (http.Handler, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := service.NewLedgerService(client, logger)
	mailer := service.NewLogMailer(logger)

	cfg := &config.Config{
		JWTSecret:   testSecret,
		BaseURL:     "http://localhost:8080",
		FrontendURL: "http://localhost:3000",
		DevMode:     true,
	}

	svcs := &Services{
		Ledger:        ledger,
		Transfer:      service.NewTransferService(client, ledger, logger),
		Auth:          service.NewAuthService(client, ledger, testSecret, cfg.BaseURL, mailer, logger),
		Admin:         service.NewAdminService(client, ledger, testSecret, logger),
		Transcription: service.NewTranscriptionService(client, transcriber.NewMock(), ledger, nil, logger),
	}

	return NewRouter(cfg, svcs, logger, "test"), client
}

func sessionFor(t *testing.T, userID int, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, userID, email, auth.PurposeSession, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["version"] != "test" {
		t.Errorf("body = %v", body)
	}
}

func TestUsageCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/usage", nil)
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var status service.UsageStatus
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status.CanUse || status.RemainingUses != service.FreeTierLimit {
		t.Errorf("status = %+v", status)
	}
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []struct {
		method, path string
	}{
		{"GET", "/auth/me"},
		{"GET", "/transcriptions"},
		{"POST", "/transcriptions/1/share"},
		{"GET", "/admin/users"},
		{"POST", "/admin/compensate"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", p.method, p.path, w.Code)
		}
	}
}

func TestAdminGate(t *testing.T) {
	router, client := newTestRouter(t)
	ctx := context.Background()

	regular, _ := client.User.Create().SetEmail("user@example.com").Save(ctx)
	admin, _ := client.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)

	// A regular user is rejected with 403.
	req := httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, regular.ID, regular.Email))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("regular user: status = %d, want 403", w.Code)
	}

	// An active admin gets the listing.
	req = httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, admin.ID, admin.Email))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", w.Code)
	}

	var users []service.AdminUser
	if err := json.NewDecoder(w.Body).Decode(&users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("users = %d, want 2", len(users))
	}
}

func TestCreateTranscription_Anonymous(t *testing.T) {
	router, _ := newTestRouter(t)

	body := strings.NewReader(`{"sourceUrl": "https://example.com/talk.mp4"}`)
	req := httptest.NewRequest("POST", "/transcriptions", body)
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var job service.TranscriptionResponse
	if err := json.NewDecoder(w.Body).Decode(&job); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if job.ID == 0 || job.SourceURL != "https://example.com/talk.mp4" {
		t.Errorf("job = %+v", job)
	}
}

func TestCreateTranscription_InvalidURL(t *testing.T) {
	router, _ := newTestRouter(t)

	body := strings.NewReader(`{"sourceUrl": "not a url"}`)
	req := httptest.NewRequest("POST", "/transcriptions", body)
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTranscription_UserWithoutTokens(t *testing.T) {
	router, client := newTestRouter(t)
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("broke@example.com").Save(ctx)

	body := strings.NewReader(`{"sourceUrl": "https://example.com/talk.mp4"}`)
	req := httptest.NewRequest("POST", "/transcriptions", body)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, u.ID, u.Email))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusPaymentRequired {
		t.Errorf("status = %d, want 402", w.Code)
	}
}

func TestBillingRoutesAbsentWithoutStripe(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/billing/packs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAuthMe(t *testing.T) {
	router, client := newTestRouter(t)
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("me@example.com").SetTokens(11).Save(ctx)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+sessionFor(t, u.ID, u.Email))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp service.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Email != "me@example.com" || resp.Tokens != 11 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSharedTranscript(t *testing.T) {
	router, client := newTestRouter(t)
	ctx := context.Background()

	u, _ := client.User.Create().SetEmail("owner@example.com").Save(ctx)
	_, err := client.Transcription.Create().
		SetOwnerID(u.ID).
		SetSourceURL("https://example.com/talk.mp4").
		SetTitle("Talk").
		SetStatus("completed").
		SetTranscript("hello world").
		SetShareToken("tok-public").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("GET", "/shared/tok-public", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var shared service.SharedTranscript
	if err := json.NewDecoder(w.Body).Decode(&shared); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if shared.Transcript != "hello world" {
		t.Errorf("transcript = %q", shared.Transcript)
	}

	// Unknown tokens are a 404.
	req = httptest.NewRequest("GET", "/shared/no-such-token", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
