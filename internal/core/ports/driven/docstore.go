package driven

import (
	"context"

	"github.com/cramhead/http-client/internal/core/domain"
)

// DocumentStore tracks the current text of open documents.
// It is the only shared mutable state in the server: implementations
// must synchronise so that concurrent open/update/close/get calls never
// produce a torn read or a lost update, and a get issued after an
// update completes observes that update.
type DocumentStore interface {
	// Open starts tracking a document.
	Open(ctx context.Context, doc domain.Document) error

	// Update replaces a tracked document's text wholesale.
	// Unknown URIs are stored rather than rejected, matching
	// whole-document sync semantics.
	Update(ctx context.Context, doc domain.Document) error

	// Close stops tracking a document and discards its text.
	Close(ctx context.Context, uri string) error

	// Get retrieves the current state of a tracked document.
	// Returns domain.ErrNotFound for unknown URIs.
	Get(ctx context.Context, uri string) (*domain.Document, error)
}
