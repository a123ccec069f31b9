package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	apperrors "partshub/internal/platform/errors"
	"partshub/internal/platform/rest"
)

func TestPostRoundTrip(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cart/add" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type %q", got)
		}
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, zap.NewNop())
	var out struct {
		Status string `json:"status"`
	}
	if err := client.Post(context.Background(), "/cart/add", map[string]any{"telegram_id": 1}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out.Status != "success" {
		t.Fatalf("unexpected status %q", out.Status)
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Cart not found"}`))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, zap.NewNop())
	err := client.Get(context.Background(), "/cart/42", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) || apiErr.Detail != "Cart not found" {
		t.Fatalf("expected detail from body, got %v", err)
	}
}

func TestTransportErrorIsWrapped(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // force connection refused

	client := rest.NewClient(srv.URL, zap.NewNop())
	if err := client.Get(context.Background(), "/health", nil); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestContextCancellationStopsRequest(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer func() { close(block); srv.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := rest.NewClient(srv.URL, zap.NewNop())
	if err := client.Get(ctx, "/health", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
