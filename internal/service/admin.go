package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nolan/scribecloud/internal/auth"
	"github.com/nolan/scribecloud/internal/ent"
	enttrans "github.com/nolan/scribecloud/internal/ent/transcription"
	entuser "github.com/nolan/scribecloud/internal/ent/user"
)

var (
	// ErrNotAuthenticated indicates the request carries no identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotAdmin indicates the caller is not an active admin.
	ErrNotAdmin = errors.New("admin permission required")
)

// AdminService gates and serves the admin surface. Every operation
// here assumes the handler already passed CheckAdminPermission.
type AdminService struct {
	db        *ent.Client
	ledger    *LedgerService
	jwtSecret string
	logger    *slog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *ent.Client, ledger *LedgerService, jwtSecret string, logger *slog.Logger) *AdminService {
	return &AdminService{db: db, ledger: ledger, jwtSecret: jwtSecret, logger: logger}
}

// CheckAdminPermission loads the caller's user record and requires an
// active admin. It is a capability gate: unauthenticated callers,
// unknown ids, and non-admins all fail the same way.
func (s *AdminService) CheckAdminPermission(ctx context.Context, userID int) (*ent.User, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotAdmin
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !u.IsAdmin || !u.IsActive {
		return nil, ErrNotAdmin
	}
	return u, nil
}

// AdminUser is the admin-view projection of a user.
type AdminUser struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Tokens    int       `json:"tokens"`
	IsAdmin   bool      `json:"isAdmin"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAdminUser(u *ent.User) *AdminUser {
	return &AdminUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Tokens:    u.Tokens,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsers returns all users, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]*AdminUser, error) {
	users, err := s.db.User.Query().
		Order(ent.Desc(entuser.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	out := make([]*AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUser(u))
	}
	return out, nil
}

// GetUserTranscriptions returns a user's transcriptions, newest first.
func (s *AdminService) GetUserTranscriptions(ctx context.Context, userID int) ([]*ent.Transcription, error) {
	exists, err := s.db.User.Query().Where(entuser.IDEQ(userID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	jobs, err := s.db.Transcription.Query().
		Where(enttrans.HasOwnerWith(entuser.IDEQ(userID))).
		Order(ent.Desc(enttrans.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transcriptions: %w", err)
	}
	return jobs, nil
}

// GetUserSpendingHistory returns a user's ledger entries, newest first.
func (s *AdminService) GetUserSpendingHistory(ctx context.Context, userID int) ([]*ent.SpendingEntry, error) {
	exists, err := s.db.User.Query().Where(entuser.IDEQ(userID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return s.ledger.GetSpendingHistory(ctx, userID)
}

// UpdateUserRequest carries the PATCHable user fields; any subset may
// be present.
type UpdateUserRequest struct {
	Tokens   *int  `json:"tokens"`
	IsActive *bool `json:"isActive"`
	IsAdmin  *bool `json:"isAdmin"`
}

// UpdateUser applies the present fields and returns their names.
// Token changes route through the ledger so the history invariant
// holds for admin edits too.
func (s *AdminService) UpdateUser(ctx context.Context, adminID, userID int, req UpdateUserRequest) ([]string, error) {
	var updated []string

	if req.Tokens != nil {
		desc := fmt.Sprintf("admin %d set balance to %d", adminID, *req.Tokens)
		if _, err := s.ledger.SetTokens(ctx, userID, *req.Tokens, desc); err != nil {
			return nil, err
		}
		updated = append(updated, "tokens")
	}

	if req.IsActive != nil || req.IsAdmin != nil {
		update := s.db.User.UpdateOneID(userID)
		if req.IsActive != nil {
			update = update.SetIsActive(*req.IsActive)
			updated = append(updated, "isActive")
		}
		if req.IsAdmin != nil {
			update = update.SetIsAdmin(*req.IsAdmin)
			updated = append(updated, "isAdmin")
		}
		if _, err := update.Save(ctx); err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	if len(updated) > 0 {
		s.logger.Info("admin updated user",
			"admin_id", adminID, "user_id", userID, "fields", updated)
	}
	return updated, nil
}

// CompensatePaymentFailure grants tokens outside the payment flow,
// e.g. after a charge failed post-delivery. Admin-gated by the caller.
func (s *AdminService) CompensatePaymentFailure(ctx context.Context, adminID, userID, tokens int, reason, stripeSessionID string) (*ent.SpendingEntry, error) {
	if tokens <= 0 {
		return nil, errors.New("tokensToGrant must be positive")
	}

	desc := fmt.Sprintf("compensation by admin %d", adminID)
	if reason != "" {
		desc += ": " + reason
	}
	if stripeSessionID != "" {
		desc += " (session " + stripeSessionID + ")"
	}
	return s.ledger.AddTokens(ctx, userID, tokens, ActionCompensation, desc)
}

// Impersonate mints a short-lived token that lets the admin act as
// the target user. The override lives in the token, never in server
// state, and expires on its own.
func (s *AdminService) Impersonate(ctx context.Context, adminID, userID int) (string, error) {
	exists, err := s.db.User.Query().Where(entuser.IDEQ(userID)).Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return "", ErrUserNotFound
	}

	token, err := auth.GenerateImpersonationToken(s.jwtSecret, adminID, userID, 15*time.Minute)
	if err != nil {
		return "", fmt.Errorf("generate impersonation token: %w", err)
	}

	s.logger.Warn("impersonation token issued", "admin_id", adminID, "user_id", userID)
	return token, nil
}
