package lsp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/cramhead/http-client/internal/core/domain"
)

func lensParams() *protocol.CodeLensParams {
	return &protocol.CodeLensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.http"},
	}
}

func TestServer_CodeLens(t *testing.T) {
	t.Run("one lens per request", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.affordances.lenses = []domain.Affordance{
			{Title: "Send GET Request", URI: "file:///a.http", Line: 0},
			{Title: "Send POST Request", URI: "file:///a.http", Line: 4},
		}
		glspCtx, notes := recordingContext()

		lenses, err := fixture.server.codeLens(glspCtx, lensParams())

		require.NoError(t, err)
		require.Len(t, lenses, 2)
		assert.Equal(t, "file:///a.http", fixture.affordances.lastURI)

		first := lenses[0]
		assert.Equal(t, protocol.UInteger(0), first.Range.Start.Line)
		assert.Equal(t, first.Range.Start, first.Range.End)
		require.NotNil(t, first.Command)
		assert.Equal(t, "Send GET Request", first.Command.Title)
		assert.Equal(t, CommandSendRequest, first.Command.Command)
		assert.Equal(t, []any{"file:///a.http", 0}, first.Command.Arguments)

		second := lenses[1]
		assert.Equal(t, protocol.UInteger(4), second.Range.Start.Line)
		require.NotNil(t, second.Command)
		assert.Equal(t, "Send POST Request", second.Command.Title)
		assert.Equal(t, []any{"file:///a.http", 4}, second.Command.Arguments)

		require.Len(t, *notes, 1)
		note := (*notes)[0]
		assert.Equal(t, protocol.ServerWindowLogMessage, note.method)
		params, ok := note.params.(protocol.LogMessageParams)
		require.True(t, ok)
		assert.Equal(t, "Found 2 HTTP requests", params.Message)
	})

	t.Run("tracked document with no requests reports a zero count", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.affordances.lenses = []domain.Affordance{}
		glspCtx, notes := recordingContext()

		lenses, err := fixture.server.codeLens(glspCtx, lensParams())

		require.NoError(t, err)
		assert.Nil(t, lenses)

		require.Len(t, *notes, 1)
		params, ok := (*notes)[0].params.(protocol.LogMessageParams)
		require.True(t, ok)
		assert.Equal(t, protocol.MessageTypeInfo, params.Type)
		assert.Equal(t, "Found 0 HTTP requests", params.Message)
	})

	t.Run("untracked document skips the count", func(t *testing.T) {
		fixture := newServerFixture(t)
		glspCtx, notes := recordingContext()

		lenses, err := fixture.server.codeLens(glspCtx, lensParams())

		require.NoError(t, err)
		assert.Nil(t, lenses)

		require.Len(t, *notes, 1)
		note := (*notes)[0]
		assert.Equal(t, protocol.ServerWindowLogMessage, note.method)
		params, ok := note.params.(protocol.LogMessageParams)
		require.True(t, ok)
		assert.Equal(t, protocol.MessageTypeWarning, params.Type)
		assert.Equal(t, "Document not found", params.Message)
	})

	t.Run("service error propagates", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.affordances.err = errors.New("backend down")

		_, err := fixture.server.codeLens(nil, lensParams())

		assert.ErrorContains(t, err, "backend down")
	})
}
