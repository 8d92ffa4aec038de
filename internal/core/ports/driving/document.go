package driving

import "context"

// DocumentSyncService applies editor document-lifecycle notifications
// to the tracked document set. All three operations use whole-document
// sync: the text supplied replaces anything previously stored.
type DocumentSyncService interface {
	// Open starts tracking a document's text.
	Open(ctx context.Context, uri, text string, version int32) error

	// Update replaces a document's text wholesale.
	Update(ctx context.Context, uri, text string, version int32) error

	// Close stops tracking a document.
	Close(ctx context.Context, uri string) error
}
