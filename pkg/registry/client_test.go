package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHeaders_WithToken(t *testing.T) {
	c, err := New("http://registry.example/api", "abc123")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	h := c.headers()
	if len(h) != 3 {
		t.Errorf("header count = %d, want 3", len(h))
	}
	if got := h.Get("Authorization"); got != "Token abc123" {
		t.Errorf("Authorization = %q, want %q", got, "Token abc123")
	}
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := h.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
}

func TestHeaders_WithoutToken(t *testing.T) {
	c, err := New("http://registry.example/api", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	h := c.headers()
	if len(h) != 2 {
		t.Errorf("header count = %d, want 2", len(h))
	}
	if h.Get("Authorization") != "" {
		t.Error("Authorization must be absent without a token")
	}
}

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New("", "token"); err == nil {
		t.Error("New with empty URL should fail")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New("http://registry.example/api/", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if c.BaseURL() != "http://registry.example/api" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}

func TestRequestURL_EscapesQuery(t *testing.T) {
	c, err := New("http://registry.example/api", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := c.requestURL(pathDeviceTypes, url.Values{"model": []string{"X9 DRFF+/G"}})
	if !strings.Contains(got, "model=X9+DRFF%2B%2FG") {
		t.Errorf("query not escaped: %q", got)
	}
	if !strings.HasPrefix(got, "http://registry.example/api/dcim/device-types/?") {
		t.Errorf("unexpected URL shape: %q", got)
	}
}

func TestDo_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = c.Manufacturers(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "not found") {
		t.Errorf("Body should carry server detail, got %q", statusErr.Body)
	}
}

func TestDo_SendsConfiguredHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "secret")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := c.Sites(context.Background(), SiteFilter{}); err != nil {
		t.Fatalf("Sites() failed: %v", err)
	}

	if gotAuth != "Token secret" {
		t.Errorf("Authorization on wire = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept on wire = %q", gotAccept)
	}
}
