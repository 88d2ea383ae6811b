package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_DoesNotFollowRedirectsByDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			_, _ = w.Write([]byte("login page"))
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}))
	defer srv.Close()

	exec := NewExecutor(WithClient(New(DefaultConfig())))
	resp, err := exec.Get(context.Background(), srv.URL+"/2023/day/1/input", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Status)
	}
}

func TestNew_FollowRedirectsWhenEnabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/final" {
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Redirect(w, r, "/final", http.StatusFound)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.FollowRedirects = true

	exec := NewExecutor(WithClient(New(cfg)))
	resp, err := exec.Get(context.Background(), srv.URL+"/start", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusOK || string(resp.BodyBytes) != "ok" {
		t.Fatalf("unexpected response: %d %q", resp.Status, resp.BodyBytes)
	}
}
