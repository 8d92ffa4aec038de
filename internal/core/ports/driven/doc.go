// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the server to function:
//
//   - DocumentStore: Open-document text tracking
//   - RequestExecutor: Outbound single-shot HTTP calls
//   - TranscriptSink: Append-only request/response record
//   - ConfigStore: Server configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
