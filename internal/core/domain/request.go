package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxURLLength is the longest target URL a request block may carry.
// Longer URLs cause the whole block to be dropped during parsing.
const MaxURLLength = 2048

// Method is an HTTP request method.
type Method string

// Recognised request methods. A line whose first token does not
// upper-case into one of these is not a request line.
const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// IsValid returns true if the method is recognised.
func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Method) String() string {
	return string(m)
}

// MethodFromToken normalises a raw token to a Method.
// The match is case-insensitive; the returned method is upper-case.
func MethodFromToken(token string) (Method, bool) {
	m := Method(strings.ToUpper(token))
	return m, m.IsValid()
}

// AllMethods returns the recognised methods in canonical order.
func AllMethods() []Method {
	return []Method{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodDelete,
		MethodPatch,
		MethodHead,
		MethodOptions,
	}
}

// Request is a single executable request parsed from a .http block.
// Requests are ephemeral: they are recomputed from the document text on
// every query and never cached across edits.
type Request struct {
	// Method is the upper-cased request method.
	Method Method

	// URL is the validated absolute target URL.
	URL string

	// Headers maps header names to values. Duplicate names within a
	// block resolve last-write-wins.
	Headers map[string]string

	// Body is the raw request body, or nil when the block has none.
	// A body section containing only whitespace collapses to nil.
	Body *string

	// Anchor is the zero-based line index of the method/URL line within
	// the document text at parse time.
	Anchor int
}

// ValidateURL checks that a raw URL token is usable as a request target.
// Each failure returns a distinct reason wrapping one of the URL
// validation sentinels.
func ValidateURL(raw string) error {
	if len(raw) > MaxURLLength {
		return fmt.Errorf("%w: %d characters", ErrURLTooLong, len(raw))
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: %q", ErrURLNotAbsolute, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrURLScheme, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q", ErrURLMissingHost, raw)
	}
	return nil
}

// Affordance is an editor-visible action bound to a request's anchor
// line: the payload a code lens or code action carries so the request
// can be re-resolved at invocation time.
type Affordance struct {
	// Title is the human-readable action label.
	Title string

	// URI identifies the document the request was parsed from.
	URI string

	// Line is the request's anchor line at generation time.
	Line int
}
