package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nolan/scribecloud/internal/auth"

	_ "github.com/mattn/go-sqlite3"
)

const testSecret = "test-secret"

func newTestAdminService(t *testing.T) (*AdminService, *LedgerService) {
	t.Helper()
	client := newTestClient(t)
	ledger := NewLedgerService(client, testLogger())
	return NewAdminService(client, ledger, testSecret, testLogger()), ledger
}

func TestCheckAdminPermission(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	regular, _ := svc.db.User.Create().SetEmail("user@example.com").Save(ctx)
	suspended, _ := svc.db.User.Create().
		SetEmail("suspended@example.com").SetIsAdmin(true).SetIsActive(false).Save(ctx)
	admin, _ := svc.db.User.Create().
		SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)

	tests := []struct {
		name    string
		userID  int
		wantErr error
	}{
		{"unauthenticated", 0, ErrNotAuthenticated},
		{"unknown user", 9999, ErrNotAdmin},
		{"regular user", regular.ID, ErrNotAdmin},
		{"suspended admin", suspended.ID, ErrNotAdmin},
		{"active admin", admin.ID, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.CheckAdminPermission(ctx, tt.userID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && u.ID != tt.userID {
				t.Errorf("user id = %d, want %d", u.ID, tt.userID)
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	svc, ledger := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)
	target, _ := svc.db.User.Create().SetEmail("target@example.com").SetTokens(3).Save(ctx)

	tokens := 50
	inactive := false
	updated, err := svc.UpdateUser(ctx, admin.ID, target.ID, UpdateUserRequest{
		Tokens:   &tokens,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated) != 2 || updated[0] != "tokens" || updated[1] != "isActive" {
		t.Errorf("updated = %v, want [tokens isActive]", updated)
	}

	target, _ = svc.db.User.Get(ctx, target.ID)
	if target.Tokens != 50 || target.IsActive {
		t.Errorf("user = tokens %d active %v, want 50/false", target.Tokens, target.IsActive)
	}

	// The balance change went through the ledger.
	entries, _ := ledger.GetSpendingHistory(ctx, target.ID)
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	if entries[0].Action != ActionAdminGrant || entries[0].TokensChanged != 47 || entries[0].BalanceAfter != 50 {
		t.Errorf("entry = %+v, want %s +47 -> 50", entries[0], ActionAdminGrant)
	}
}

func TestUpdateUser_NoFields(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)
	target, _ := svc.db.User.Create().SetEmail("target@example.com").Save(ctx)

	updated, err := svc.UpdateUser(ctx, admin.ID, target.ID, UpdateUserRequest{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated) != 0 {
		t.Errorf("updated = %v, want empty", updated)
	}
}

func TestUpdateUser_UnknownUser(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)

	tokens := 10
	_, err := svc.UpdateUser(ctx, admin.ID, 9999, UpdateUserRequest{Tokens: &tokens})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCompensatePaymentFailure(t *testing.T) {
	svc, ledger := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)
	target, _ := svc.db.User.Create().SetEmail("target@example.com").Save(ctx)

	entry, err := svc.CompensatePaymentFailure(ctx, admin.ID, target.ID, 20, "charge failed after delivery", "cs_broken")
	if err != nil {
		t.Fatalf("compensate: %v", err)
	}
	if entry.Action != ActionCompensation || entry.TokensChanged != 20 || entry.BalanceAfter != 20 {
		t.Errorf("entry = %+v, want %s +20 -> 20", entry, ActionCompensation)
	}

	target, _ = svc.db.User.Get(ctx, target.ID)
	if target.Tokens != 20 {
		t.Errorf("balance = %d, want 20", target.Tokens)
	}

	entries, _ := ledger.GetSpendingHistory(ctx, target.ID)
	if len(entries) != 1 {
		t.Errorf("history entries = %d, want 1", len(entries))
	}
}

func TestCompensatePaymentFailure_RejectsNonPositive(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)
	target, _ := svc.db.User.Create().SetEmail("target@example.com").Save(ctx)

	if _, err := svc.CompensatePaymentFailure(ctx, admin.ID, target.ID, 0, "", ""); err == nil {
		t.Fatal("expected error for zero grant")
	}
	if _, err := svc.CompensatePaymentFailure(ctx, admin.ID, target.ID, -5, "", ""); err == nil {
		t.Fatal("expected error for negative grant")
	}
}

func TestImpersonate(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)
	target, _ := svc.db.User.Create().SetEmail("target@example.com").Save(ctx)

	token, err := svc.Impersonate(ctx, admin.ID, target.ID)
	if err != nil {
		t.Fatalf("impersonate: %v", err)
	}

	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Purpose != auth.PurposeImpersonate {
		t.Errorf("purpose = %s, want %s", claims.Purpose, auth.PurposeImpersonate)
	}
	if claims.UserID != target.ID || claims.AdminID != admin.ID {
		t.Errorf("claims = user %d admin %d, want user %d admin %d",
			claims.UserID, claims.AdminID, target.ID, admin.ID)
	}
}

func TestImpersonate_UnknownUser(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	admin, _ := svc.db.User.Create().SetEmail("admin@example.com").SetIsAdmin(true).Save(ctx)

	_, err := svc.Impersonate(ctx, admin.ID, 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestListUsers(t *testing.T) {
	svc, _ := newTestAdminService(t)
	ctx := context.Background()

	_, _ = svc.db.User.Create().SetEmail("a@example.com").Save(ctx)
	_, _ = svc.db.User.Create().SetEmail("b@example.com").SetTokens(7).Save(ctx)

	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("users = %d, want 2", len(users))
	}
	for _, u := range users {
		if u.Email == "b@example.com" && u.Tokens != 7 {
			t.Errorf("projection tokens = %d, want 7", u.Tokens)
		}
	}
}
