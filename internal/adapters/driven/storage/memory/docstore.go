package memory

import (
	"context"
	"sync"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// The map holds values, so Get hands out a copy and callers can never
// mutate stored text behind the lock.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Open stores the initial text of a document.
func (s *DocumentStore) Open(_ context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.URI] = doc
	return nil
}

// Update replaces the stored text of a document. An update for a URI
// that was never opened is stored rather than rejected, so a missed
// open notification does not wedge the session.
func (s *DocumentStore) Update(_ context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.URI] = doc
	return nil
}

// Close forgets a document. Closing an unknown URI is a no-op.
func (s *DocumentStore) Close(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, uri)
	return nil
}

// Get retrieves a document by URI.
func (s *DocumentStore) Get(_ context.Context, uri string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[uri]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}
