package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/cramhead/http-client/internal/core/domain"
)

func (s *Server) codeLens(glspCtx *glsp.Context, params *protocol.CodeLensParams) ([]protocol.CodeLens, error) {
	uri := string(params.TextDocument.URI)

	affordances, err := s.ports.Affordances.Lenses(requestContext(glspCtx), uri)
	if err != nil {
		return nil, fmt.Errorf("code lenses for %s: %w", uri, err)
	}
	if affordances == nil {
		// Untracked document: no count to report, and no protocol error
		// either, since the client may query before didOpen lands.
		logMessage(glspCtx, protocol.MessageTypeWarning, "Document not found")
		return nil, nil
	}

	logMessage(glspCtx, protocol.MessageTypeInfo, fmt.Sprintf("Found %d HTTP requests", len(affordances)))

	if len(affordances) == 0 {
		return nil, nil
	}

	lenses := make([]protocol.CodeLens, len(affordances))
	for i, affordance := range affordances {
		lenses[i] = protocol.CodeLens{
			Range:   lineRange(affordance.Line),
			Command: affordanceCommand(affordance),
		}
	}

	return lenses, nil
}

// lineRange pins a zero-width range at the start of a line.
func lineRange(line int) protocol.Range {
	position := protocol.Position{Line: protocol.UInteger(line), Character: 0}
	return protocol.Range{Start: position, End: position}
}

// affordanceCommand binds an affordance to the send-request command.
// The arguments carry only the document URI and line so execution
// re-resolves the request against whatever text is current when the
// user finally clicks.
func affordanceCommand(affordance domain.Affordance) *protocol.Command {
	return &protocol.Command{
		Title:     affordance.Title,
		Command:   CommandSendRequest,
		Arguments: []any{affordance.URI, affordance.Line},
	}
}
