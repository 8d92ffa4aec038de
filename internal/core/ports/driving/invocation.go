package driving

import "context"

// InvocationService resolves an invoked command back to a request and
// executes it. The (uri, line) pair is the only state carried from
// affordance generation to invocation; the document may have changed in
// between, so the line is re-validated against a fresh parse.
type InvocationService interface {
	// Invoke looks up the document, re-parses it, and executes the
	// request whose anchor equals line exactly. A missing document or a
	// failed execution returns an error; a line that no longer matches
	// any anchor is a deliberate no-op result, not an error.
	Invoke(ctx context.Context, uri string, line int) (*InvocationResult, error)
}

// InvocationResult reports what an invocation did.
type InvocationResult struct {
	// Executed is false when the line matched no request anchor and
	// nothing was sent. All other fields are then zero.
	Executed bool

	// Summary is the short result line, e.g. "200 OK (123ms)".
	Summary string

	// TranscriptPath is the file the transcript was appended to, empty
	// when the append failed.
	TranscriptPath string

	// SinkErr carries a transcript persistence failure. The HTTP call
	// itself still succeeded; persistence is reported independently.
	SinkErr error
}
