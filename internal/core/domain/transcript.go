package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	transcriptTimeLayout = "2006-01-02 15:04:05"
	separatorWidth       = 80
)

// TranscriptEntry pairs an executed request with its response, ready to
// be appended to the transcript file.
type TranscriptEntry struct {
	Request  Request
	Response Response
}

// Format renders the complete transcript record: separator framing with
// a timestamp, the request section, then the response section. The
// response body is pretty-printed when the content type declares JSON
// and the body parses as such, verbatim otherwise. Header lines are
// written in sorted name order so identical entries format identically.
// The record ends with the blank lines that separate it from the next
// append.
func (e TranscriptEntry) Format(now time.Time) string {
	var b strings.Builder
	sep := strings.Repeat("=", separatorWidth)

	b.WriteString(sep)
	b.WriteString("\n[")
	b.WriteString(now.Format(transcriptTimeLayout))
	b.WriteString("]\n")
	b.WriteString(sep)
	b.WriteString("\n")

	b.WriteString("### REQUEST ###\n")
	fmt.Fprintf(&b, "%s %s\n", e.Request.Method, e.Request.URL)
	if len(e.Request.Headers) > 0 {
		b.WriteString("\n")
		writeHeaderLines(&b, e.Request.Headers)
	}
	if e.Request.Body != nil {
		b.WriteString("\n")
		b.WriteString(*e.Request.Body)
		b.WriteString("\n")
	}

	b.WriteString("\n### RESPONSE ###\n")
	fmt.Fprintf(&b, "HTTP/1.1 %d %s (%dms)\n",
		e.Response.Status, e.Response.Reason, e.Response.Elapsed.Milliseconds())
	b.WriteString("\n")
	writeHeaderLines(&b, e.Response.Headers)
	b.WriteString("\n")
	b.WriteString(renderBody(e.Response))
	b.WriteString("\n\n\n")

	return b.String()
}

func writeHeaderLines(b *strings.Builder, headers map[string]string) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, "%s: %s\n", name, headers[name])
	}
}

// renderBody pretty-prints JSON response bodies with two-space
// indentation. Anything that is not declared and parseable as JSON
// passes through verbatim.
func renderBody(resp Response) string {
	contentType := headerValue(resp.Headers, "content-type")
	if !strings.Contains(strings.ToLower(contentType), "application/json") {
		return resp.Body
	}

	dec := json.NewDecoder(strings.NewReader(resp.Body))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil || dec.More() {
		return resp.Body
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return resp.Body
	}
	return string(pretty)
}

// headerValue looks up a header by name, ignoring case. Executors store
// lower-cased names but entries built by hand in tests may not.
func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
