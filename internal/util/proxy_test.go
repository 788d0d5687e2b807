package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func proxyRequest(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, rawURL, nil)
	return req
}

func TestNewProxyFunc_SchemeSelection(t *testing.T) {
	proxy := NewProxyFunc("http://proxy-a:3128", "http://proxy-b:3128")

	u, err := proxy(proxyRequest(t, "http://example.com/posts.json"))
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	if u.Host != "proxy-a:3128" {
		t.Errorf("http proxy = %s, want proxy-a:3128", u.Host)
	}

	u, err = proxy(proxyRequest(t, "https://example.com/posts.json"))
	if err != nil {
		t.Fatalf("https request: %v", err)
	}
	if u.Host != "proxy-b:3128" {
		t.Errorf("https proxy = %s, want proxy-b:3128", u.Host)
	}
}

func TestNewProxyFunc_HTTPProxyCoversHTTPS(t *testing.T) {
	// Only an http proxy configured: https requests use it too, matching
	// the single-proxy setups most environments run.
	proxy := NewProxyFunc("http://proxy-a:3128", "")

	u, err := proxy(proxyRequest(t, "https://example.com/"))
	if err != nil {
		t.Fatalf("https request: %v", err)
	}
	if u == nil || u.Host != "proxy-a:3128" {
		t.Errorf("proxy = %v, want proxy-a:3128", u)
	}
}

func TestNewProxyFunc_InvalidURL(t *testing.T) {
	proxy := NewProxyFunc("http://bad proxy", "")

	if _, err := proxy(proxyRequest(t, "http://example.com/")); err == nil {
		t.Error("expected error for malformed proxy URL")
	}
}
