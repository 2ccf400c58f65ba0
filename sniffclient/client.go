// ABOUTME: HTTP client for the news credibility analysis API
// ABOUTME: Submits analyze requests with a bounded timeout and typed errors

package sniffclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
)

// maxErrorBodyBytes caps how much of an error response is read
const maxErrorBodyBytes = 64 * 1024

// Client submits analyses to the API
type Client struct {
	config Config
}

// analyzeRequest is the body for POST /analyze
type analyzeRequest struct {
	URLOrText string `json:"url_or_text"`
}

// errorResponse is the body the server sends on failure
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewClient creates a new analysis client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &Client{config: config}, nil
}

// Analyze submits a URL or text snippet for credibility analysis.
// Blank input fails locally without touching the network.
func (c *Client) Analyze(ctx context.Context, urlOrText string) (*Result, error) {
	input := strings.TrimSpace(urlOrText)
	if input == "" {
		return nil, ErrEmptyInput
	}

	body, err := json.Marshal(analyzeRequest{URLOrText: input})
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, networkMessage).WithCause(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, networkMessage).WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewError(ErrorTypeNetwork, networkMessage).WithCause(err)
	}

	return &result, nil
}

// Health probes the service health endpoint
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/health", nil)
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, networkMessage).WithCause(err)
	}

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp)
	}

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, NewError(ErrorTypeNetwork, networkMessage).WithCause(err)
	}

	return &health, nil
}

// classifyTransportError separates timeouts from other transport failures
func classifyTransportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewError(ErrorTypeTimeout, timeoutMessage).WithCause(err)
	}
	return NewError(ErrorTypeNetwork, networkMessage).WithCause(err)
}

// serverError builds an error from a non-2xx response. A structured
// detail field is surfaced verbatim when present.
func serverError(resp *http.Response) *Error {
	e := &Error{
		Type:       ErrorTypeServer,
		Message:    "The analysis service returned an error.",
		StatusCode: resp.StatusCode,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return e
	}

	var body errorResponse
	if json.Unmarshal(raw, &body) == nil && body.Detail != "" {
		e.Message = body.Detail
	}

	return e
}
