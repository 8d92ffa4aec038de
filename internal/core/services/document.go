package services

import (
	"context"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
	"github.com/cramhead/http-client/internal/core/ports/driving"
)

var docLog = commonlog.GetLogger("http-lsp.documents")

// Ensure DocumentSyncService implements the interface.
var _ driving.DocumentSyncService = (*DocumentSyncService)(nil)

// DocumentSyncService applies editor document-lifecycle notifications
// to the document store. It owns no state of its own: the store is the
// single source of truth for open-document text.
type DocumentSyncService struct {
	docStore driven.DocumentStore
}

// NewDocumentSyncService creates a new document sync service.
func NewDocumentSyncService(docStore driven.DocumentStore) *DocumentSyncService {
	return &DocumentSyncService{docStore: docStore}
}

// Open starts tracking a document's text.
func (s *DocumentSyncService) Open(ctx context.Context, uri, text string, version int32) error {
	doc := domain.Document{URI: uri, Text: text, Version: version}
	if err := s.docStore.Open(ctx, doc); err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	docLog.Debugf("opened %s (version %d, %d bytes)", uri, version, len(text))
	return nil
}

// Update replaces a document's text wholesale.
func (s *DocumentSyncService) Update(ctx context.Context, uri, text string, version int32) error {
	doc := domain.Document{URI: uri, Text: text, Version: version}
	if err := s.docStore.Update(ctx, doc); err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	docLog.Debugf("updated %s (version %d, %d bytes)", uri, version, len(text))
	return nil
}

// Close stops tracking a document.
func (s *DocumentSyncService) Close(ctx context.Context, uri string) error {
	if err := s.docStore.Close(ctx, uri); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	docLog.Debugf("closed %s", uri)
	return nil
}
