package lsp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/cramhead/http-client/internal/core/domain"
)

func (s *Server) executeCommand(glspCtx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	switch params.Command {
	case CommandSendRequest:
		return s.sendRequest(glspCtx, params.Arguments)
	default:
		return nil, fmt.Errorf("unknown command: %s", params.Command)
	}
}

// sendRequest executes the request identified by the [uri, line]
// argument pair. Outcomes are reported to the user through
// window/showMessage; the command itself only fails on transport-level
// problems, never on a failed HTTP exchange.
func (s *Server) sendRequest(glspCtx *glsp.Context, arguments []any) (any, error) {
	uri, line, err := decodeSendRequestArgs(arguments)
	if err != nil {
		// Malformed invocations are dropped rather than failed; the
		// client may replay commands from stale lens state.
		lspLog.Warningf("ignoring %s: %s", CommandSendRequest, err)
		return nil, nil
	}

	result, err := s.ports.Invocations.Invoke(requestContext(glspCtx), uri, line)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logMessage(glspCtx, protocol.MessageTypeError, "Document not found")
			return nil, nil
		}
		showMessage(glspCtx, protocol.MessageTypeError, fmt.Sprintf("Request failed: %s", err))
		return nil, nil
	}
	if !result.Executed {
		// The line no longer anchors a request; stay silent so stale
		// clicks do not spam the user.
		lspLog.Debugf("no request at %s:%d", uri, line)
		return nil, nil
	}

	if result.SinkErr != nil {
		showMessage(glspCtx, protocol.MessageTypeError, fmt.Sprintf("Failed to write response: %s", result.SinkErr))
		return result.Summary, nil
	}

	filename := s.ports.Settings.Get().Transcript.Filename
	showMessage(glspCtx, protocol.MessageTypeInfo, fmt.Sprintf("✓ %s - Response appended to %s", result.Summary, filename))
	return result.Summary, nil
}

// decodeSendRequestArgs unpacks the [uri, line] argument pair. JSON
// numbers arrive as float64; some clients stringify the line instead.
// All failures wrap domain.ErrInvalidInput.
func decodeSendRequestArgs(arguments []any) (string, int, error) {
	if len(arguments) < 2 {
		return "", 0, fmt.Errorf("%w: expected [uri, line], got %d arguments", domain.ErrInvalidInput, len(arguments))
	}

	uri, ok := arguments[0].(string)
	if !ok || uri == "" {
		return "", 0, fmt.Errorf("%w: document uri must be a non-empty string, got %T", domain.ErrInvalidInput, arguments[0])
	}

	line, err := decodeLine(arguments[1])
	if err != nil {
		return "", 0, err
	}

	return uri, line, nil
}

func decodeLine(arg any) (int, error) {
	switch v := arg.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		line, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: line must be a number, got %q", domain.ErrInvalidInput, v)
		}
		return line, nil
	default:
		return 0, fmt.Errorf("%w: line must be a number, got %T", domain.ErrInvalidInput, arg)
	}
}
