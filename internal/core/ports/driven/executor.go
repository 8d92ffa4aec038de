package driven

import (
	"context"
	"time"

	"github.com/cramhead/http-client/internal/core/domain"
)

// RequestExecutor performs exactly one HTTP call for a parsed request.
// Implementations honour the timeout, never retry, and never attach a
// body to HEAD requests. Response header names are lower-cased with
// duplicates resolved last-write-wins.
type RequestExecutor interface {
	// Execute sends the request and returns the decoded response with
	// its elapsed wall-clock time. Methods outside the recognised set
	// fail with domain.ErrUnsupportedMethod; network failures, timeouts
	// and undecodable bodies fail with descriptive errors.
	Execute(ctx context.Context, req domain.Request, timeout time.Duration) (*domain.Response, error)
}
