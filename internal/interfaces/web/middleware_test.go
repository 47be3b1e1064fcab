package web

import (
	"net/http/httptest"
	"testing"
)

func TestClientAddress(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/players", nil)
	req.RemoteAddr = "198.51.100.4:51234"
	if got := clientAddress(req); got != "198.51.100.4" {
		t.Fatalf("unexpected address from RemoteAddr: %q", got)
	}

	req.Header.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	if got := clientAddress(req); got != "203.0.113.7" {
		t.Fatalf("unexpected address from X-Forwarded-For: %q", got)
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/ping", "/healthz", " /ping "} {
		if shouldTraceRequest(path) {
			t.Fatalf("probe path %q should not be traced", path)
		}
	}
	for _, path := range []string{"/", "/players", "/accounts"} {
		if !shouldTraceRequest(path) {
			t.Fatalf("data path %q should be traced", path)
		}
	}
}
