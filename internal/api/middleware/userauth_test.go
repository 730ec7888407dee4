package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nolan/scribecloud/internal/auth"
)

const testSecret = "test-secret"

func identityEcho(gotUser, gotAdmin *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUser = UserIDFromContext(r.Context())
		*gotAdmin = ImpersonatorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestUserAuth_BearerToken(t *testing.T) {
	token, _ := auth.GenerateToken(testSecret, 42, "user@example.com", auth.PurposeSession, time.Hour)

	var gotUser, gotAdmin int
	handler := UserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUser != 42 {
		t.Errorf("user id = %d, want 42", gotUser)
	}
	if gotAdmin != 0 {
		t.Errorf("impersonator = %d, want 0", gotAdmin)
	}
}

func TestUserAuth_SessionCookie(t *testing.T) {
	token, _ := auth.GenerateToken(testSecret, 7, "user@example.com", auth.PurposeSession, time.Hour)

	var gotUser, gotAdmin int
	handler := UserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK || gotUser != 7 {
		t.Errorf("status = %d user = %d, want 200/7", w.Code, gotUser)
	}
}

func TestUserAuth_ImpersonationToken(t *testing.T) {
	token, _ := auth.GenerateImpersonationToken(testSecret, 1, 42, 15*time.Minute)

	var gotUser, gotAdmin int
	handler := UserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUser != 42 {
		t.Errorf("effective user = %d, want 42", gotUser)
	}
	if gotAdmin != 1 {
		t.Errorf("impersonator = %d, want 1", gotAdmin)
	}
}

func TestUserAuth_Rejections(t *testing.T) {
	magicLink, _ := auth.GenerateToken(testSecret, 42, "user@example.com", auth.PurposeMagicLink, time.Hour)
	expired, _ := auth.GenerateToken(testSecret, 42, "user@example.com", auth.PurposeSession, -time.Hour)
	wrongKey, _ := auth.GenerateToken("other-secret", 42, "user@example.com", auth.PurposeSession, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"magic link purpose", magicLink},
		{"expired", expired},
		{"wrong secret", wrongKey},
		{"garbage", "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser, gotAdmin int
			handler := UserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

			req := httptest.NewRequest("GET", "/", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestOptionalUserAuth_AnonymousPassesThrough(t *testing.T) {
	var gotUser, gotAdmin int
	handler := OptionalUserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUser != 0 {
		t.Errorf("user id = %d, want 0", gotUser)
	}
}

func TestOptionalUserAuth_AttachesIdentity(t *testing.T) {
	token, _ := auth.GenerateToken(testSecret, 9, "user@example.com", auth.PurposeSession, time.Hour)

	var gotUser, gotAdmin int
	handler := OptionalUserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if gotUser != 9 {
		t.Errorf("user id = %d, want 9", gotUser)
	}
}

func TestOptionalUserAuth_BadTokenIsAnonymous(t *testing.T) {
	var gotUser, gotAdmin int
	handler := OptionalUserAuth(testSecret)(identityEcho(&gotUser, &gotAdmin))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK || gotUser != 0 {
		t.Errorf("status = %d user = %d, want 200/0", w.Code, gotUser)
	}
}
