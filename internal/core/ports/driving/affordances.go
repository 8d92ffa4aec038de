package driving

import (
	"context"

	"github.com/cramhead/http-client/internal/core/domain"
)

// AffordanceService produces the line-anchored actions an editor can
// show for a document. Both queries re-parse the current stored text on
// every call and hold no state between calls; unknown documents yield
// empty results rather than errors, so stale editor requests never
// surface as protocol failures.
type AffordanceService interface {
	// Lenses returns one affordance per request in the document, each
	// at its request's anchor line, in document order. A tracked
	// document with no requests yields an empty non-nil slice; an
	// unknown document yields nil, so callers can tell the two apart.
	Lenses(ctx context.Context, uri string) ([]domain.Affordance, error)

	// ActionAt returns the affordance for the request whose anchor is
	// closest at or above the given line, or nil when no request
	// precedes the line or the document is unknown.
	ActionAt(ctx context.Context, uri string, line int) (*domain.Affordance, error)
}
