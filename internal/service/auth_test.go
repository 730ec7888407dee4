package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nolan/scribecloud/internal/auth"

	_ "github.com/mattn/go-sqlite3"
)

type mockMailer struct {
	lastTo   string
	lastLink string
}

func (m *mockMailer) SendMagicLink(to, link string) error {
	m.lastTo = to
	m.lastLink = link
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *mockMailer) {
	t.Helper()
	client := newTestClient(t)
	ledger := NewLedgerService(client, testLogger())
	mailer := &mockMailer{}
	svc := NewAuthService(client, ledger, testSecret, "http://localhost:8080", mailer, testLogger())
	return svc, mailer
}

func TestSendMagicLink_CreatesUserWithBonus(t *testing.T) {
	svc, mailer := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.SendMagicLink(ctx, "new@example.com"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if mailer.lastTo != "new@example.com" {
		t.Errorf("to = %s, want new@example.com", mailer.lastTo)
	}
	if mailer.lastLink == "" {
		t.Error("link should not be empty")
	}

	u, err := svc.db.User.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query user: %v", err)
	}
	if u.Tokens != SignupBonusTokens {
		t.Errorf("tokens = %d, want signup bonus %d", u.Tokens, SignupBonusTokens)
	}

	entries, _ := svc.ledger.GetSpendingHistory(ctx, u.ID)
	if len(entries) != 1 || entries[0].Action != ActionSignupBonus {
		t.Errorf("history = %+v, want one %s entry", entries, ActionSignupBonus)
	}
}

func TestSendMagicLink_ExistingUserKeepsBalance(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_ = svc.SendMagicLink(ctx, "repeat@example.com")
	_ = svc.SendMagicLink(ctx, "repeat@example.com")

	users, _ := svc.db.User.Query().All(ctx)
	if len(users) != 1 {
		t.Fatalf("users = %d, want 1", len(users))
	}
	// The bonus is paid once, on creation.
	if users[0].Tokens != SignupBonusTokens {
		t.Errorf("tokens = %d, want %d", users[0].Tokens, SignupBonusTokens)
	}
}

func TestVerifyMagicLink(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_ = svc.SendMagicLink(ctx, "login@example.com")
	u, _ := svc.db.User.Query().Only(ctx)

	token, _ := auth.GenerateToken(testSecret, u.ID, u.Email, auth.PurposeMagicLink, 15*time.Minute)

	w := httptest.NewRecorder()
	sessionToken, userID, err := svc.VerifyMagicLink(ctx, w, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != u.ID {
		t.Errorf("user id = %d, want %d", userID, u.ID)
	}

	claims, err := auth.ValidateToken(testSecret, sessionToken)
	if err != nil {
		t.Fatalf("validate session: %v", err)
	}
	if claims.Purpose != auth.PurposeSession || claims.UserID != u.ID {
		t.Errorf("claims = %+v, want session for user %d", claims, u.ID)
	}

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			found = true
			if !c.HttpOnly {
				t.Error("session cookie should be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("session cookie not set")
	}
}

func TestVerifyMagicLink_RejectsSessionToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_ = svc.SendMagicLink(ctx, "login@example.com")
	u, _ := svc.db.User.Query().Only(ctx)

	token, _ := auth.GenerateToken(testSecret, u.ID, u.Email, auth.PurposeSession, time.Hour)

	w := httptest.NewRecorder()
	if _, _, err := svc.VerifyMagicLink(ctx, w, token); err == nil {
		t.Fatal("expected error for session token used as magic link")
	}
}

func TestDevLogin(t *testing.T) {
	svc, mailer := newTestAuthService(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	sessionToken, userID, err := svc.DevLogin(ctx, w, "dev@example.com")
	if err != nil {
		t.Fatalf("dev login: %v", err)
	}
	if userID == 0 || sessionToken == "" {
		t.Fatalf("login = (%q, %d)", sessionToken, userID)
	}
	if mailer.lastTo != "" {
		t.Error("dev login must not send mail")
	}

	claims, err := auth.ValidateToken(testSecret, sessionToken)
	if err != nil || claims.Purpose != auth.PurposeSession {
		t.Errorf("claims = %+v err = %v, want session", claims, err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_ = svc.SendMagicLink(ctx, "me@example.com")
	u, _ := svc.db.User.Query().Only(ctx)

	resp, err := svc.GetCurrentUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if resp.Email != "me@example.com" || resp.Tokens != SignupBonusTokens {
		t.Errorf("resp = %+v", resp)
	}
	if resp.IsAdmin || !resp.IsActive {
		t.Errorf("flags = admin %v active %v, want false/true", resp.IsAdmin, resp.IsActive)
	}
}
