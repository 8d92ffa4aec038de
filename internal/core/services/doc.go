// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services hold no document state of their own: every operation reads
// through the document store and re-parses, so affordances and
// invocations always reflect the latest synced text.
package services
