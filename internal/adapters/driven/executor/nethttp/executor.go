// Package nethttp provides a request executor adapter using net/http.
package nethttp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
)

// Ensure Executor implements the interface.
var _ driven.RequestExecutor = (*Executor)(nil)

// Executor performs HTTP exchanges for resolved request descriptors.
// The timeout is applied per call via the context rather than on the
// client, so a config change between invocations takes effect
// immediately.
type Executor struct {
	client *http.Client
}

// NewExecutor creates a new HTTP request executor.
func NewExecutor() *Executor {
	return &Executor{
		client: &http.Client{},
	}
}

// Execute sends one HTTP request and reads the full response body.
// Redirects are followed by the underlying client; only the final
// response is reported.
func (e *Executor) Execute(ctx context.Context, req domain.Request, timeout time.Duration) (*domain.Response, error) {
	if !req.Method.IsValid() {
		return nil, fmt.Errorf("%s: %w", req.Method, domain.ErrUnsupportedMethod)
	}

	if timeout <= 0 {
		timeout = domain.DefaultTimeoutSeconds * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// HEAD requests never carry a body, whatever the block contains
	body := io.Reader(http.NoBody)
	if req.Body != nil && req.Method != domain.MethodHead {
		body = strings.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &domain.Response{
		Status:  resp.StatusCode,
		Reason:  reasonPhrase(resp.StatusCode),
		Headers: flattenHeaders(resp.Header),
		Body:    string(respBody),
		Elapsed: elapsed,
	}, nil
}

// reasonPhrase returns the canonical reason for a status code, or
// "Unknown" for codes outside the registered set so the transcript
// status line never ends up with an empty phrase.
func reasonPhrase(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Unknown"
}

// flattenHeaders lower-cases header names and keeps the last value for
// names that appear more than once.
func flattenHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for name, values := range header {
		if len(values) == 0 {
			continue
		}
		headers[strings.ToLower(name)] = values[len(values)-1]
	}
	return headers
}
