package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nolan/scribecloud/internal/auth"
	"github.com/nolan/scribecloud/internal/ent"
	entuser "github.com/nolan/scribecloud/internal/ent/user"
)

// SignupBonusTokens is credited to every new account.
const SignupBonusTokens = 5

// AuthService handles user authentication via magic links.
type AuthService struct {
	db        *ent.Client
	ledger    *LedgerService
	jwtSecret string
	baseURL   string
	mailer    Mailer
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *ent.Client, ledger *LedgerService, jwtSecret, baseURL string, mailer Mailer, logger *slog.Logger) *AuthService {
	return &AuthService{
		db:        db,
		ledger:    ledger,
		jwtSecret: jwtSecret,
		baseURL:   baseURL,
		mailer:    mailer,
		logger:    logger,
	}
}

// findOrCreateUser returns the user for email, creating it (with the
// signup bonus) on first login.
func (s *AuthService) findOrCreateUser(ctx context.Context, email string) (*ent.User, error) {
	u, err := s.db.User.Query().Where(entuser.EmailEQ(email)).Only(ctx)
	if err == nil {
		return u, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user: %w", err)
	}

	u, err = s.db.User.Create().
		SetEmail(email).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a signup race; the other request created the row.
			return s.db.User.Query().Where(entuser.EmailEQ(email)).Only(ctx)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if _, err := s.ledger.AddTokens(ctx, u.ID, SignupBonusTokens, ActionSignupBonus, "welcome bonus"); err != nil {
		s.logger.Error("credit signup bonus", "user_id", u.ID, "error", err)
	}
	return u, nil
}

// SendMagicLink finds or creates a user by email and sends a magic link.
func (s *AuthService) SendMagicLink(ctx context.Context, email string) error {
	u, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken(s.jwtSecret, u.ID, u.Email, auth.PurposeMagicLink, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, token)
	return s.mailer.SendMagicLink(email, link)
}

// VerifyMagicLink validates a magic link token, sets the session
// cookie, and returns the session JWT and user id.
func (s *AuthService) VerifyMagicLink(ctx context.Context, w http.ResponseWriter, tokenStr string) (string, int, error) {
	claims, err := auth.ValidateToken(s.jwtSecret, tokenStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid token: %w", err)
	}
	if claims.Purpose != auth.PurposeMagicLink {
		return "", 0, fmt.Errorf("invalid token purpose")
	}

	u, err := s.db.User.Get(ctx, claims.UserID)
	if err != nil {
		return "", 0, fmt.Errorf("user not found: %w", err)
	}

	sessionToken, err := s.issueSession(w, u)
	if err != nil {
		return "", 0, err
	}
	return sessionToken, u.ID, nil
}

// DevLogin finds or creates a user by email and issues a session
// directly, skipping the magic link email. Dev mode only.
func (s *AuthService) DevLogin(ctx context.Context, w http.ResponseWriter, email string) (string, int, error) {
	u, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return "", 0, err
	}

	sessionToken, err := s.issueSession(w, u)
	if err != nil {
		return "", 0, err
	}
	return sessionToken, u.ID, nil
}

func (s *AuthService) issueSession(w http.ResponseWriter, u *ent.User) (string, error) {
	sessionToken, err := auth.GenerateToken(s.jwtSecret, u.ID, u.Email, auth.PurposeSession, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("generate session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
	return sessionToken, nil
}

// UserResponse is the API response for user info.
type UserResponse struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Tokens   int    `json:"tokens"`
	IsAdmin  bool   `json:"isAdmin"`
	IsActive bool   `json:"isActive"`
}

// GetCurrentUser returns the user info for the given user ID.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int) (*UserResponse, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Tokens:   u.Tokens,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}, nil
}
