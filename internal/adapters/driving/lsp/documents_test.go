package lsp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func openParams(text string) *protocol.DidOpenTextDocumentParams {
	return &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        "file:///requests.http",
			LanguageID: "http",
			Version:    1,
			Text:       text,
		},
	}
}

func changeParams(version int32, changes ...any) *protocol.DidChangeTextDocumentParams {
	return &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///requests.http"},
			Version:                version,
		},
		ContentChanges: changes,
	}
}

func TestServer_DidOpen(t *testing.T) {
	t.Run("stores document text", func(t *testing.T) {
		fixture := newServerFixture(t)
		glspCtx, notes := recordingContext()

		err := fixture.server.didOpen(glspCtx, openParams("GET http://example.com/api"))

		require.NoError(t, err)
		require.Len(t, fixture.documents.opened, 1)
		assert.Equal(t, docEvent{
			uri:     "file:///requests.http",
			text:    "GET http://example.com/api",
			version: 1,
		}, fixture.documents.opened[0])

		require.Len(t, *notes, 1)
		note := (*notes)[0]
		assert.Equal(t, protocol.ServerWindowLogMessage, note.method)
		params, ok := note.params.(protocol.LogMessageParams)
		require.True(t, ok)
		assert.Equal(t, protocol.MessageTypeInfo, params.Type)
		assert.Equal(t, "Opened document: file:///requests.http", params.Message)
	})

	t.Run("propagates store error", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.documents.openErr = errors.New("store full")

		err := fixture.server.didOpen(nil, openParams(""))

		assert.ErrorContains(t, err, "store full")
	})
}

func TestServer_DidChange(t *testing.T) {
	t.Run("whole text change replaces document", func(t *testing.T) {
		fixture := newServerFixture(t)

		err := fixture.server.didChange(nil, changeParams(2,
			protocol.TextDocumentContentChangeEventWhole{Text: "POST http://example.com/api"},
		))

		require.NoError(t, err)
		require.Len(t, fixture.documents.updated, 1)
		assert.Equal(t, docEvent{
			uri:     "file:///requests.http",
			text:    "POST http://example.com/api",
			version: 2,
		}, fixture.documents.updated[0])
	})

	t.Run("first change event wins", func(t *testing.T) {
		fixture := newServerFixture(t)

		err := fixture.server.didChange(nil, changeParams(3,
			protocol.TextDocumentContentChangeEventWhole{Text: "first"},
			protocol.TextDocumentContentChangeEventWhole{Text: "second"},
		))

		require.NoError(t, err)
		require.Len(t, fixture.documents.updated, 1)
		assert.Equal(t, "first", fixture.documents.updated[0].text)
	})

	t.Run("ranged change event still applies its text", func(t *testing.T) {
		fixture := newServerFixture(t)

		err := fixture.server.didChange(nil, changeParams(2,
			protocol.TextDocumentContentChangeEvent{Text: "GET http://example.com/api"},
		))

		require.NoError(t, err)
		require.Len(t, fixture.documents.updated, 1)
		assert.Equal(t, "GET http://example.com/api", fixture.documents.updated[0].text)
	})

	t.Run("no change events is a no-op", func(t *testing.T) {
		fixture := newServerFixture(t)

		err := fixture.server.didChange(nil, changeParams(2))

		require.NoError(t, err)
		assert.Empty(t, fixture.documents.updated)
	})

	t.Run("unexpected change type returns error", func(t *testing.T) {
		fixture := newServerFixture(t)

		err := fixture.server.didChange(nil, changeParams(2, 42))

		assert.ErrorContains(t, err, "unexpected content change type")
		assert.Empty(t, fixture.documents.updated)
	})

	t.Run("propagates store error", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.documents.updateErr = errors.New("store full")

		err := fixture.server.didChange(nil, changeParams(2,
			protocol.TextDocumentContentChangeEventWhole{Text: "x"},
		))

		assert.ErrorContains(t, err, "store full")
	})
}

func TestServer_DidClose(t *testing.T) {
	t.Run("stops tracking document", func(t *testing.T) {
		fixture := newServerFixture(t)

		err := fixture.server.didClose(nil, &protocol.DidCloseTextDocumentParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///requests.http"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"file:///requests.http"}, fixture.documents.closed)
	})

	t.Run("propagates store error", func(t *testing.T) {
		fixture := newServerFixture(t)
		fixture.documents.closeErr = errors.New("store gone")

		err := fixture.server.didClose(nil, &protocol.DidCloseTextDocumentParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///requests.http"},
		})

		assert.ErrorContains(t, err, "store gone")
	})
}
