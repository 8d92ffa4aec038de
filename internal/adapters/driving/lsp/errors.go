// Package lsp provides the Language Server Protocol adapter for .http
// request files. It tracks open documents, surfaces send affordances as
// code lenses and code actions, and dispatches the send-request command.
package lsp

import "errors"

// Errors returned when required ports are not provided.
var (
	ErrMissingDocumentService   = errors.New("lsp: document sync service is required")
	ErrMissingAffordanceService = errors.New("lsp: affordance service is required")
	ErrMissingInvocationService = errors.New("lsp: invocation service is required")
	ErrMissingSettingsService   = errors.New("lsp: settings service is required")
)
