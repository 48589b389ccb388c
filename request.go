package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxErrorBodySize limits how much of an error response body is read when
// building an error message. This guards against misconfigured servers
// returning very large payloads; 4KB is plenty for an error message.
const maxErrorBodySize = 4096

// send builds and executes one HTTP request against the API. The body, if
// non-nil, is JSON-encoded verbatim. Transport failures are returned with
// the underlying error wrapped so callers can inspect it with errors.As.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("n8n: encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("n8n: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(method).Inc()
		return nil, fmt.Errorf("n8n: %s %s: %w", method, path, err)
	}
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// do executes a request and decodes a successful response into out. A
// status of 400 or above becomes an [*APIError]; out may be nil when the
// caller does not need the payload.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("n8n: decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error
// response. The n8n API reports errors as {"message": "..."}; anything
// else falls back to the raw (truncated) body.
func readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(raw))
}

func closeBody(resp *http.Response) {
	_ = resp.Body.Close()
}
