package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/circuitbreaker"
	"github.com/piresc/smartdustbin/internal/pkg/retry"
)

// Client is a JSON HTTP client bound to one base URL. Calls optionally go
// through a circuit breaker, and GETs through a retrier.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// Option configures a Client
type Option func(*Client)

// WithCircuitBreaker guards every call with cb
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// WithGetRetry retries GET requests that failed before a response arrived.
// Other methods are never retried.
func WithGetRetry(r *retry.Retrier) Option {
	return func(c *Client) { c.retrier = r }
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// TransportError means no response was received
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "failed to send request: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err happened before any response arrived
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsServerFailure reports whether err says the remote side is unhealthy:
// nothing answered, or it answered with a 5xx. Cancellation by the caller
// does not count.
func IsServerFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= http.StatusInternalServerError
	}
	return IsTransportError(err)
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		BaseURL: strings.TrimRight(serviceURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON issues a GET and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON sends body as JSON and decodes the response into out when non-nil
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	call := func(ctx context.Context) error {
		return c.send(ctx, method, path, payload, out)
	}
	if c.retrier != nil && method == http.MethodGet {
		attempt := call
		call = func(ctx context.Context) error {
			return c.retrier.Execute(ctx, attempt)
		}
	}
	if c.breaker != nil {
		return c.breaker.Execute(ctx, call)
	}
	return call(ctx)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &StatusError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
