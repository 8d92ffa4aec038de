package lsp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driving"
)

// --- Mock implementations for LSP handler testing ---
// Note: These hold canned results plus call tracking so tests can
// assert on what the handlers forwarded to the ports.

type docEvent struct {
	uri     string
	text    string
	version int32
}

type mockDocumentService struct {
	openErr   error
	updateErr error
	closeErr  error

	opened  []docEvent
	updated []docEvent
	closed  []string
}

func (m *mockDocumentService) Open(_ context.Context, uri, text string, version int32) error {
	m.opened = append(m.opened, docEvent{uri: uri, text: text, version: version})
	return m.openErr
}

func (m *mockDocumentService) Update(_ context.Context, uri, text string, version int32) error {
	m.updated = append(m.updated, docEvent{uri: uri, text: text, version: version})
	return m.updateErr
}

func (m *mockDocumentService) Close(_ context.Context, uri string) error {
	m.closed = append(m.closed, uri)
	return m.closeErr
}

type mockAffordanceService struct {
	lenses []domain.Affordance
	action *domain.Affordance
	err    error

	lastURI  string
	lastLine int
}

func (m *mockAffordanceService) Lenses(_ context.Context, uri string) ([]domain.Affordance, error) {
	m.lastURI = uri
	return m.lenses, m.err
}

func (m *mockAffordanceService) ActionAt(_ context.Context, uri string, line int) (*domain.Affordance, error) {
	m.lastURI = uri
	m.lastLine = line
	return m.action, m.err
}

type invokeCall struct {
	uri  string
	line int
}

type mockInvocationService struct {
	result *driving.InvocationResult
	err    error

	calls []invokeCall
}

func (m *mockInvocationService) Invoke(_ context.Context, uri string, line int) (*driving.InvocationResult, error) {
	m.calls = append(m.calls, invokeCall{uri: uri, line: line})
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockSettingsService struct {
	settings domain.Settings
}

func (m *mockSettingsService) Get() domain.Settings {
	return m.settings
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// --- Test fixtures ---

type serverFixture struct {
	server      *Server
	documents   *mockDocumentService
	affordances *mockAffordanceService
	invocations *mockInvocationService
	settings    *mockSettingsService
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	documents := &mockDocumentService{}
	affordances := &mockAffordanceService{}
	invocations := &mockInvocationService{}
	settings := &mockSettingsService{settings: domain.DefaultSettings()}

	server, err := NewServer(&Ports{
		Documents:   documents,
		Affordances: affordances,
		Invocations: invocations,
		Settings:    settings,
	})
	require.NoError(t, err)

	return &serverFixture{
		server:      server,
		documents:   documents,
		affordances: affordances,
		invocations: invocations,
		settings:    settings,
	}
}

type notification struct {
	method string
	params any
}

// recordingContext returns a glsp context whose Notify captures every
// notification for later inspection.
func recordingContext() (*glsp.Context, *[]notification) {
	notes := &[]notification{}
	glspCtx := &glsp.Context{
		Notify: func(method string, params any) {
			*notes = append(*notes, notification{method: method, params: params})
		},
	}
	return glspCtx, notes
}
