// Package api is the single point of contact with the remote banking
// backend. Every console screen and subcommand goes through Client; nothing
// in this program talks HTTP anywhere else.
//
// Calls are single best-effort attempts: no retries, no backoff. Failures
// come back as either a *TransportError (unreachable host, non-2xx status)
// or a *DecodeError (2xx response whose body is not valid JSON), so callers
// can tell the two apart with errors.As.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"bankdesk/internal/logger"
)

type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
	}
}

// TransportError is an HTTP-level failure: the request never completed, or
// the server answered outside 2xx. Status is 0 when no response arrived.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("unexpected status %d from %s", e.Status, e.URL)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is a successfully transported response whose body could not be
// parsed. Window holds the raw text around the reported offset, when the
// parser gives one.
type DecodeError struct {
	Err    error
	Window string
}

func (e *DecodeError) Error() string {
	if e.Window != "" {
		return fmt.Sprintf("invalid JSON in response: %v (near %q)", e.Err, e.Window)
	}
	return fmt.Sprintf("invalid JSON in response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Request issues one HTTP request against the backend and returns the raw
// JSON body. An empty or whitespace-only body is normalized to an empty
// collection; several backend endpoints answer 200 with no content.
func (c *Client) Request(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	url := c.baseURL + path
	requestID := uuid.NewString()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger.Info("api request", logger.Fields{
		"method":     method,
		"url":        url,
		"request_id": requestID,
	})

	resp, err := c.hc.Do(req)
	if err != nil {
		terr := &TransportError{URL: url, Err: err}
		logger.Error("api request failed", terr, logger.Fields{"request_id": requestID})
		return nil, terr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := &TransportError{URL: url, Err: err}
		logger.Error("api response unreadable", terr, logger.Fields{"request_id": requestID})
		return nil, terr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		terr := &TransportError{URL: url, Status: resp.StatusCode}
		logger.Error("api request rejected", terr, logger.Fields{
			"request_id": requestID,
			"status":     resp.StatusCode,
		})
		return nil, terr
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("[]"), nil
	}

	// The body is validated as a whole before anything decodes into a typed
	// struct, so a malformed payload is reported with its surroundings
	// instead of surfacing as an opaque field-level parse error later.
	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		derr := &DecodeError{Err: err, Window: decodeWindow(trimmed, err)}
		logger.Error("api response undecodable", derr, logger.Fields{"request_id": requestID})
		return nil, derr
	}

	return json.RawMessage(trimmed), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.call(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) put(ctx context.Context, path string, payload, out any) error {
	return c.call(ctx, http.MethodPut, path, payload, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) call(ctx context.Context, method, path string, payload, out any) error {
	raw, err := c.Request(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Err: err, Window: decodeWindow(raw, err)}
	}
	return nil
}

// decodeWindow slices ±50 characters of raw text around the offset the JSON
// parser reported, for operator diagnostics.
func decodeWindow(raw []byte, err error) string {
	var offset int64 = -1

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	if offset < 0 || offset > int64(len(raw)) {
		return ""
	}

	start := offset - 50
	if start < 0 {
		start = 0
	}
	end := offset + 50
	if end > int64(len(raw)) {
		end = int64(len(raw))
	}
	return string(raw[start:end])
}
