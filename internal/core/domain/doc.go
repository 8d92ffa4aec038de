// Package domain defines the core business entities for the .http
// language server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An open editor document tracked by URI
//   - Request: A parsed request block with its source line anchor
//   - Response: The outcome of executing a request
//   - Affordance: A line-anchored "run this request" action
//   - TranscriptEntry: A formatted request/response record
//
// The request parser also lives here: turning document text into an
// ordered sequence of requests is a pure business rule with no I/O,
// so it sits at the centre of the hexagon alongside the types it
// produces.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
