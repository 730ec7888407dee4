// Package fingerprint derives a stable anonymous-identity key from
// request metadata. The key is a soft rate-limit handle, not a
// security boundary.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// Size is the length of a generated fingerprint in hex characters.
const Size = 16

// Generate returns a deterministic fingerprint for the given request
// metadata. Missing values degrade to "unknown" rather than failing.
func Generate(ip, userAgent, acceptLanguage, acceptEncoding string) string {
	parts := []string{
		orUnknown(ip),
		orUnknown(userAgent),
		orUnknown(acceptLanguage),
		orUnknown(acceptEncoding),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:Size]
}

// FromRequest extracts client metadata from r and returns the
// fingerprint together with the resolved IP and user agent. A
// well-formed X-Fingerprint header, as sent by the frontend, takes
// precedence over the server-derived value so the identity stays
// stable across requests with differing headers.
func FromRequest(r *http.Request) (fp, ip, userAgent string) {
	ip = ClientIP(r)
	userAgent = r.Header.Get("User-Agent")
	if h := r.Header.Get("X-Fingerprint"); len(h) == Size {
		return h, ip, userAgent
	}
	fp = Generate(ip, userAgent, r.Header.Get("Accept-Language"), r.Header.Get("Accept-Encoding"))
	return fp, ip, userAgent
}

// ClientIP resolves the client address, preferring proxy headers.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
