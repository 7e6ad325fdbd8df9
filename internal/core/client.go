// Package core is the HTTP client for the lending platform's admin API.
// Every dashboard page and action goes through this one client: it attaches
// the operator's bearer token, enforces the fixed request timeout and
// normalizes failures into ErrUnauthorized, ErrNetwork or *APIError.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/moncredit/admin-dashboard/internal/metrics"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client from viper config.
func NewClient() *Client {
	viper.SetDefault("core_api.base_url", "http://localhost:5000/api")
	viper.SetDefault("core_api.timeout", 30*time.Second)

	return &Client{
		baseURL: strings.TrimRight(viper.GetString("core_api.base_url"), "/"),
		http:    &http.Client{Timeout: viper.GetDuration("core_api.timeout")},
	}
}

// NewClientWithBase is used by tests to point the client at a local server.
func NewClientWithBase(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, token, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, token, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, token, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("core: encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("core: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[CORE] %s %s failed: %v", method, path, err)
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "network_error").Inc()
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(method, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		log.Printf("[CORE] %s %s returned %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("core: decode response: %w", err)
		}
	}
	return nil
}
