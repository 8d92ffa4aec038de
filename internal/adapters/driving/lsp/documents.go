package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) didOpen(glspCtx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	uri := string(doc.URI)

	if err := s.ports.Documents.Open(requestContext(glspCtx), uri, doc.Text, doc.Version); err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}

	logMessage(glspCtx, protocol.MessageTypeInfo, fmt.Sprintf("Opened document: %s", uri))
	return nil
}

func (s *Server) didChange(glspCtx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	// Full sync: the first change event carries the complete new text.
	var text string
	switch change := params.ContentChanges[0].(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		text = change.Text
	case protocol.TextDocumentContentChangeEvent:
		text = change.Text
	default:
		return fmt.Errorf("unexpected content change type %T", change)
	}

	uri := string(params.TextDocument.URI)
	if err := s.ports.Documents.Update(requestContext(glspCtx), uri, text, params.TextDocument.Version); err != nil {
		return fmt.Errorf("update %s: %w", uri, err)
	}
	return nil
}

func (s *Server) didClose(glspCtx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if err := s.ports.Documents.Close(requestContext(glspCtx), uri); err != nil {
		return fmt.Errorf("close %s: %w", uri, err)
	}
	return nil
}
