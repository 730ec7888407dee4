package fingerprint

import (
	"net/http/httptest"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("203.0.113.7", "Mozilla/5.0", "en-US", "gzip")
	b := Generate("203.0.113.7", "Mozilla/5.0", "en-US", "gzip")
	if a != b {
		t.Errorf("same inputs produced %q and %q", a, b)
	}
	if len(a) != Size {
		t.Errorf("got length %d, want %d", len(a), Size)
	}
}

func TestGenerate_DifferentInputs(t *testing.T) {
	a := Generate("203.0.113.7", "Mozilla/5.0", "en-US", "gzip")
	b := Generate("203.0.113.8", "Mozilla/5.0", "en-US", "gzip")
	if a == b {
		t.Error("different IPs produced the same fingerprint")
	}
}

func TestGenerate_MissingHeaders(t *testing.T) {
	got := Generate("", "", "", "")
	want := Generate("unknown", "unknown", "unknown", "unknown")
	if got != want {
		t.Errorf("empty inputs = %q, want the unknown placeholder hash %q", got, want)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		fwd    string
		real   string
		remote string
		want   string
	}{
		{name: "forwarded single", fwd: "198.51.100.1", remote: "10.0.0.1:1234", want: "198.51.100.1"},
		{name: "forwarded chain", fwd: "198.51.100.1, 10.0.0.2", remote: "10.0.0.1:1234", want: "198.51.100.1"},
		{name: "real ip", real: "198.51.100.9", remote: "10.0.0.1:1234", want: "198.51.100.9"},
		{name: "remote addr", remote: "192.0.2.4:5678", want: "192.0.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.fwd != "" {
				r.Header.Set("X-Forwarded-For", tt.fwd)
			}
			if tt.real != "" {
				r.Header.Set("X-Real-IP", tt.real)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.4:5678"
	r.Header.Set("User-Agent", "test-agent")
	r.Header.Set("Accept-Language", "en")
	r.Header.Set("Accept-Encoding", "gzip")

	fp, ip, ua := FromRequest(r)
	if ip != "192.0.2.4" {
		t.Errorf("ip = %q", ip)
	}
	if ua != "test-agent" {
		t.Errorf("user agent = %q", ua)
	}
	if fp != Generate("192.0.2.4", "test-agent", "en", "gzip") {
		t.Error("fingerprint does not match Generate over the same metadata")
	}
}

func TestFromRequest_ExplicitHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Fingerprint", "abcdef0123456789")

	fp, _, _ := FromRequest(r)
	if fp != "abcdef0123456789" {
		t.Errorf("fp = %q, want the header value", fp)
	}

	// Malformed headers fall back to derivation.
	r.Header.Set("X-Fingerprint", "short")
	fp, _, _ = FromRequest(r)
	if fp == "short" {
		t.Error("malformed header should not be used verbatim")
	}
	if len(fp) != Size {
		t.Errorf("derived fp length = %d, want %d", len(fp), Size)
	}
}
