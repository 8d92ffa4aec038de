package lsp

import (
	"github.com/cramhead/http-client/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the language
// server. This provides a single injection point for dependency injection.
type Ports struct {
	// Documents mirrors open editor buffers into the document store.
	Documents driving.DocumentSyncService

	// Affordances computes code lenses and code actions from document text.
	Affordances driving.AffordanceService

	// Invocations resolves and executes requests behind invoked affordances.
	Invocations driving.InvocationService

	// Settings exposes the current server configuration.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	if p.Affordances == nil {
		return ErrMissingAffordanceService
	}
	if p.Invocations == nil {
		return ErrMissingInvocationService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
