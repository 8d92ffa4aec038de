package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
	"github.com/cramhead/http-client/internal/core/ports/driving"
)

var affordLog = commonlog.GetLogger("http-lsp.affordances")

// Ensure AffordanceService implements the interface.
var _ driving.AffordanceService = (*AffordanceService)(nil)

// AffordanceService derives line-anchored actions from the current
// stored text. It re-parses on every query instead of caching parse
// results: the document changes underneath at any time and there is no
// invalidation protocol for a cache, so fresh parses are the only state
// that cannot drift.
type AffordanceService struct {
	docStore driven.DocumentStore
}

// NewAffordanceService creates a new affordance service.
func NewAffordanceService(docStore driven.DocumentStore) *AffordanceService {
	return &AffordanceService{docStore: docStore}
}

// Lenses returns one affordance per request in the document, each at
// its request's anchor line. Unknown documents yield nil; tracked
// documents always yield a non-nil slice, empty or not.
func (s *AffordanceService) Lenses(ctx context.Context, uri string) ([]domain.Affordance, error) {
	doc, err := s.docStore.Get(ctx, uri)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	requests := parseLogged(affordLog, doc.Text)
	affordLog.Debugf("%d requests in %s", len(requests), uri)

	affordances := make([]domain.Affordance, 0, len(requests))
	for _, req := range requests {
		affordances = append(affordances, affordanceFor(req, uri))
	}
	return affordances, nil
}

// ActionAt returns the affordance for the request whose anchor is
// closest at or above the given line. The nearest-preceding match is
// deliberate here and only here: an action request points at wherever
// the cursor is, not necessarily at a request line.
func (s *AffordanceService) ActionAt(ctx context.Context, uri string, line int) (*domain.Affordance, error) {
	doc, err := s.docStore.Get(ctx, uri)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	var match *domain.Request
	for _, req := range parseLogged(affordLog, doc.Text) {
		if req.Anchor <= line && (match == nil || req.Anchor > match.Anchor) {
			r := req
			match = &r
		}
	}
	if match == nil {
		return nil, nil
	}

	affordance := affordanceFor(*match, uri)
	return &affordance, nil
}

// affordanceFor binds a parsed request to its invocation payload.
func affordanceFor(req domain.Request, uri string) domain.Affordance {
	return domain.Affordance{
		Title: fmt.Sprintf("Send %s Request", req.Method),
		URI:   uri,
		Line:  req.Anchor,
	}
}

// parseLogged parses document text, logging each block dropped for an
// invalid URL with its distinct reason.
func parseLogged(log commonlog.Logger, text string) []domain.Request {
	requests, skipped := domain.ParseRequests(text)
	for _, skip := range skipped {
		log.Infof("skipping block at line %d: %s", skip.Line, skip.Reason)
	}
	return requests
}
