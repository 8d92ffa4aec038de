package driven

import (
	"context"

	"github.com/cramhead/http-client/internal/core/domain"
)

// OutputDirFunc resolves the directory a transcript should be written
// to from the path of the document that triggered the request. It is a
// pluggable strategy so tests can pin the directory without recreating
// a project layout on disk.
type OutputDirFunc func(docPath string) string

// TranscriptSink persists the append-only record of executed requests.
type TranscriptSink interface {
	// Append writes one formatted record. docURI identifies the
	// triggering document; the sink derives the output directory from
	// it. Returns the full path of the file appended to.
	Append(ctx context.Context, docURI string, entry domain.TranscriptEntry) (string, error)
}
