package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, such as a
	// command invocation whose arguments do not decode.
	ErrInvalidInput = errors.New("invalid input")

	// URL validation errors. Each one is the distinct reason a request
	// block was dropped during parsing.

	// ErrURLTooLong indicates the URL exceeds MaxURLLength characters.
	ErrURLTooLong = errors.New("url exceeds maximum length")

	// ErrURLNotAbsolute indicates the URL did not parse as an absolute URL.
	ErrURLNotAbsolute = errors.New("url is not absolute")

	// ErrURLScheme indicates a scheme other than http or https.
	ErrURLScheme = errors.New("url scheme must be http or https")

	// ErrURLMissingHost indicates the URL has no host component.
	ErrURLMissingHost = errors.New("url has no host")

	// Execution errors.

	// ErrUnsupportedMethod indicates a method outside the recognised set
	// reached the executor.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)
