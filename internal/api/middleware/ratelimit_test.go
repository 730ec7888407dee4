package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimit_KeysByClientIP(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RateLimit(0.01, 1)(ok)

	send := func(clientIP string) int {
		req := httptest.NewRequest("GET", "/usage", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		req.Header.Set("X-Forwarded-For", clientIP)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send("9.9.9.9"); code != http.StatusNoContent {
		t.Fatalf("first request: code = %d, want 204", code)
	}
	if code := send("9.9.9.9"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: code = %d, want 429", code)
	}

	// A different client behind the same proxy hop has its own bucket.
	if code := send("8.8.8.8"); code != http.StatusNoContent {
		t.Fatalf("other client: code = %d, want 204", code)
	}
}

func TestSecurity_SetsHeaders(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := Security("https://api.example.com")(ok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	for name, want := range map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Referrer-Policy":           "no-referrer",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	} {
		if got := rr.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	// HSTS only makes sense over TLS.
	h = Security("http://localhost:8080")(ok)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if got := rr.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS set on plain-http base URL: %q", got)
	}
}
