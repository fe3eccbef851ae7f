// Package httpclient wraps net/http for outbound JSON calls. Every call
// is bounded by a timeout and failures come back as a typed *Error
// instead of a bare transport error, so callers can branch on status.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound call unless the client is
// constructed with a different value.
const DefaultTimeout = 15 * time.Second

// Error is a failed HTTP exchange. Transport-level failures carry a
// synthetic status of 500 since no response status exists.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Response is a successful JSON exchange. Data holds the decoded body.
type Response struct {
	Data   any
	Status int
	Header http.Header
}

// Client issues GET requests and decodes JSON bodies. The zero value is
// not usable; construct with New.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{},
		timeout: timeout,
	}
}

// GetJSON performs a GET against url and decodes the response body as
// JSON. A non-2xx status, a timeout, or an undecodable body all return a
// *Error; a single attempt is made with no retries.
func (c *Client) GetJSON(ctx context.Context, url string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Message: err.Error(), Status: http.StatusInternalServerError}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{
				Message: fmt.Sprintf("request timed out: %s", url),
				Status:  http.StatusInternalServerError,
			}
		}
		return nil, &Error{Message: err.Error(), Status: http.StatusInternalServerError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Status:  resp.StatusCode,
		}
	}

	var data any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &Error{Message: fmt.Sprintf("decoding response from %s: %v", url, err), Status: http.StatusInternalServerError}
	}

	return &Response{
		Data:   data,
		Status: resp.StatusCode,
		Header: resp.Header,
	}, nil
}
