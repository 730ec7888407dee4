package middleware

import (
	"net/http"
	"strings"
)

// Baseline headers for every response. The API serves JSON only, so
// framing and content sniffing protections can be strict, and shared
// transcript URLs must not leak through referrers.
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
	"X-XSS-Protection":       "0",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
}

// Security returns middleware that applies the baseline security
// headers, plus HSTS when the service is served over TLS.
func Security(baseURL string) func(http.Handler) http.Handler {
	hsts := strings.HasPrefix(baseURL, "https://")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}
			if hsts {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
