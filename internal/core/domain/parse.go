package domain

import "strings"

// BlockDelimiter separates request blocks in a .http document.
// Any line whose trimmed content starts with it closes the current
// block and opens a new one.
const BlockDelimiter = "###"

// SkippedBlock records a block dropped during parsing because its
// request line carried an invalid URL. Line is the zero-based index of
// the offending request line; Reason wraps one of the URL validation
// sentinels.
type SkippedBlock struct {
	Line   int
	Reason error
}

// ParseRequests turns document text into the ordered sequence of
// requests it contains, top to bottom. Each block between delimiters
// yields at most one request; blocks without a valid request line are
// dropped silently, while blocks whose URL fails validation are
// reported in the skipped slice so callers can log the reason.
//
// The function is pure: re-parsing identical text yields identical
// requests and anchors.
func ParseRequests(text string) ([]Request, []SkippedBlock) {
	lines := splitLines(text)

	var requests []Request
	var skipped []SkippedBlock

	start := 0
	flush := func(end int) {
		req, skip := parseBlock(lines[start:end], start)
		if req != nil {
			requests = append(requests, *req)
		}
		if skip != nil {
			skipped = append(skipped, *skip)
		}
	}

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), BlockDelimiter) {
			flush(i)
			start = i + 1
		}
	}
	flush(len(lines))

	return requests, skipped
}

// splitLines splits on newlines, stripping a trailing carriage return
// from each line so CRLF documents parse like LF ones.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isComment reports whether a trimmed line is a comment.
func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}

// parseBlock parses one delimiter-bounded block into at most one
// request. offset is the document line index of the block's first line,
// so anchors refer to the whole document rather than the block.
//
// Within a block, lines before the request line that are blank,
// comments, or otherwise unrecognisable are skipped. The first line
// whose first whitespace-delimited token upper-cases into the method
// set, and that carries a URL token, is the request line. After it,
// lines up to the first blank line are headers (split on the first
// colon, both sides trimmed, last write wins; colon-less lines are
// ignored). Everything after the first blank line is the body,
// verbatim, trimmed only at the ends.
func parseBlock(lines []string, offset int) (*Request, *SkippedBlock) {
	var req *Request
	inBody := false
	var bodyLines []string

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if req == nil {
			if trimmed == "" || isComment(trimmed) {
				continue
			}
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				continue
			}
			method, ok := MethodFromToken(fields[0])
			if !ok {
				continue
			}
			rawURL := fields[1]
			if err := ValidateURL(rawURL); err != nil {
				// An invalid URL poisons the whole block: no later
				// line is promoted to request line in its place.
				return nil, &SkippedBlock{Line: offset + i, Reason: err}
			}
			req = &Request{
				Method:  method,
				URL:     rawURL,
				Headers: make(map[string]string),
				Anchor:  offset + i,
			}
			continue
		}

		if inBody {
			bodyLines = append(bodyLines, line)
			continue
		}

		if trimmed == "" {
			inBody = true
			continue
		}
		if isComment(trimmed) {
			continue
		}
		if idx := strings.Index(trimmed, ":"); idx >= 0 {
			name := strings.TrimSpace(trimmed[:idx])
			value := strings.TrimSpace(trimmed[idx+1:])
			req.Headers[name] = value
		}
	}

	if req == nil {
		return nil, nil
	}
	if len(bodyLines) > 0 {
		body := strings.TrimSpace(strings.Join(bodyLines, "\n"))
		if body != "" {
			req.Body = &body
		}
	}
	return req, nil
}
