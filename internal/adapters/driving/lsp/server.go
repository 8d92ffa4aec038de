package lsp

import (
	"context"
	"fmt"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
)

const (
	// Name is the server name reported to clients during initialisation.
	Name = "http-lsp"

	// Version is the server version reported to clients.
	Version = "0.1.0"

	// CommandSendRequest executes the request anchored at a
	// (document, line) pair. Clients invoke it through code lenses and
	// code actions; the arguments are re-resolved against the document
	// text current at invocation time.
	CommandSendRequest = "http.sendRequest"
)

var lspLog = commonlog.GetLogger("http-lsp.server")

// Server is the LSP server for .http request files. It speaks the
// protocol over stdio and delegates all behaviour to the driving ports.
type Server struct {
	ports   *Ports
	handler protocol.Handler
}

// NewServer creates a new language server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports}
	s.handler = protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		Shutdown:                s.shutdown,
		SetTrace:                s.setTrace,
		TextDocumentDidOpen:     s.didOpen,
		TextDocumentDidChange:   s.didChange,
		TextDocumentDidClose:    s.didClose,
		TextDocumentCodeLens:    s.codeLens,
		TextDocumentCodeAction:  s.codeAction,
		WorkspaceExecuteCommand: s.executeCommand,
	}

	return s, nil
}

// Run serves the session over stdio and blocks until the client
// disconnects. Stdout belongs to the protocol stream; logging goes
// through the configured commonlog backend.
func (s *Server) Run() error {
	return glspserver.NewServer(&s.handler, Name, false).RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		clientVersion := ""
		if params.ClientInfo.Version != nil {
			clientVersion = " " + *params.ClientInfo.Version
		}
		lspLog.Debugf("initialising for client %s%s", params.ClientInfo.Name, clientVersion)
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull
	capabilities.CodeLensProvider = &protocol.CodeLensOptions{}
	capabilities.CodeActionProvider = true
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{CommandSendRequest},
	}

	version := Version
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	lspLog.Info("session initialised")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	lspLog.Info("shutdown requested")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// requestContext returns the context handler work runs under. The
// transport carries no per-request context; when the session tears
// down, in-flight calls are abandoned with the process.
func requestContext(_ *glsp.Context) context.Context {
	return context.Background()
}

// showMessage raises a user-visible notification in the client.
func showMessage(glspCtx *glsp.Context, level protocol.MessageType, message string) {
	if glspCtx == nil || glspCtx.Notify == nil {
		return
	}
	glspCtx.Notify(protocol.ServerWindowShowMessage, protocol.ShowMessageParams{
		Type:    level,
		Message: message,
	})
}

// logMessage writes to the client's log channel without raising UI.
func logMessage(glspCtx *glsp.Context, level protocol.MessageType, message string) {
	if glspCtx == nil || glspCtx.Notify == nil {
		return
	}
	glspCtx.Notify(protocol.ServerWindowLogMessage, protocol.LogMessageParams{
		Type:    level,
		Message: message,
	})
}
