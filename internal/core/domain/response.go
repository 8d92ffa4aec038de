package domain

import (
	"fmt"
	"time"
)

// Response is the outcome of executing a request.
type Response struct {
	// Status is the numeric HTTP status code.
	Status int

	// Reason is the status reason phrase ("OK", "Not Found").
	Reason string

	// Headers maps lower-cased response header names to values.
	// Duplicate names resolve last-write-wins.
	Headers map[string]string

	// Body is the full response body decoded as text.
	Body string

	// Elapsed is the wall-clock duration of the round trip.
	Elapsed time.Duration
}

// Summary returns the short result line surfaced to the user,
// e.g. "200 OK (123ms)".
func (r Response) Summary() string {
	return fmt.Sprintf("%d %s (%dms)", r.Status, r.Reason, r.Elapsed.Milliseconds())
}
