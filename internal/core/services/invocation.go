package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
	"github.com/cramhead/http-client/internal/core/ports/driving"
)

var invokeLog = commonlog.GetLogger("http-lsp.invoke")

// Ensure InvocationService implements the interface.
var _ driving.InvocationService = (*InvocationService)(nil)

// InvocationService resolves command invocations back to requests and
// executes them. Resolution is an exact anchor match against a fresh
// parse: if the document changed since the affordance was generated and
// no request sits at the invoked line any more, the invocation is a
// deliberate no-op rather than a guess at the user's intent.
type InvocationService struct {
	docStore driven.DocumentStore
	executor driven.RequestExecutor
	sink     driven.TranscriptSink
	settings driving.SettingsService
}

// NewInvocationService creates a new invocation service.
func NewInvocationService(
	docStore driven.DocumentStore,
	executor driven.RequestExecutor,
	sink driven.TranscriptSink,
	settings driving.SettingsService,
) *InvocationService {
	return &InvocationService{
		docStore: docStore,
		executor: executor,
		sink:     sink,
		settings: settings,
	}
}

// Invoke executes the request anchored at the exact line of the given
// document. An unknown document or a failed execution returns an error;
// a stale line returns a non-executed result. Transcript persistence
// failures are carried in the result, independent of the HTTP outcome.
func (s *InvocationService) Invoke(ctx context.Context, uri string, line int) (*driving.InvocationResult, error) {
	execID := uuid.NewString()[:8]

	doc, err := s.docStore.Get(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", uri, err)
	}

	target := requestAt(parseLogged(invokeLog, doc.Text), line)
	if target == nil {
		invokeLog.Debugf("[%s] no request anchored at %s:%d, ignoring", execID, uri, line)
		return &driving.InvocationResult{Executed: false}, nil
	}

	timeout := s.settings.Get().Request.Timeout()
	invokeLog.Infof("[%s] %s %s (timeout %s)", execID, target.Method, target.URL, timeout)

	resp, err := s.executor.Execute(ctx, *target, timeout)
	if err != nil {
		invokeLog.Errorf("[%s] execution failed: %s", execID, err)
		return nil, fmt.Errorf("execute %s %s: %w", target.Method, target.URL, err)
	}
	invokeLog.Infof("[%s] %s", execID, resp.Summary())

	result := &driving.InvocationResult{
		Executed: true,
		Summary:  resp.Summary(),
	}

	entry := domain.TranscriptEntry{Request: *target, Response: *resp}
	path, sinkErr := s.sink.Append(ctx, uri, entry)
	if sinkErr != nil {
		invokeLog.Errorf("[%s] transcript append failed: %s", execID, sinkErr)
		result.SinkErr = sinkErr
		return result, nil
	}

	invokeLog.Debugf("[%s] transcript appended to %s", execID, path)
	result.TranscriptPath = path
	return result, nil
}

// requestAt returns the request anchored exactly at line, or nil.
func requestAt(requests []domain.Request, line int) *domain.Request {
	for _, req := range requests {
		if req.Anchor == line {
			r := req
			return &r
		}
	}
	return nil
}
