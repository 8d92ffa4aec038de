package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) codeAction(glspCtx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	line := int(params.Range.Start.Line)

	affordance, err := s.ports.Affordances.ActionAt(requestContext(glspCtx), uri, line)
	if err != nil {
		return nil, fmt.Errorf("code action for %s:%d: %w", uri, line, err)
	}
	if affordance == nil {
		return nil, nil
	}

	kind := protocol.CodeActionKindEmpty
	preferred := true
	return []protocol.CodeAction{
		{
			Title:       affordance.Title,
			Kind:        &kind,
			IsPreferred: &preferred,
			Command:     affordanceCommand(*affordance),
		},
	}, nil
}
