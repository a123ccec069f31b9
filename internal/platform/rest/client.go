package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "partshub/internal/platform/errors"
)

// Client is the thin JSON wrapper every module's HTTP adapter goes
// through. Paths are relative to <base>/api. There is no retry, no
// backoff, and deliberately no client-wide timeout: cancellation comes
// from the caller's context only.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		httpc:   &http.Client{},
		log:     log,
	}
}

// APIError is a non-2xx backend response. The backend reports failures as
// {"detail": "..."}; Detail keeps that string when present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			if json.Unmarshal(raw, &payload) == nil {
				apiErr.Detail = payload.Detail
			}
		}
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
