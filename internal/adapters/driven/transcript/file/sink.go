// Package file provides a transcript sink adapter that appends
// formatted request/response records to a plain-text file.
package file

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.TranscriptSink = (*Sink)(nil)

// Sink appends transcript records to a file whose directory is derived
// from the triggering document and whose name comes from settings. The
// file is opened per append, so an external truncation or deletion
// between requests just starts a fresh transcript.
type Sink struct {
	resolveDir driven.OutputDirFunc
	filename   func() string
}

// NewSink creates a new file transcript sink. A nil resolveDir falls
// back to ProjectRootDir and a nil filename to the default transcript
// filename.
func NewSink(resolveDir driven.OutputDirFunc, filename func() string) *Sink {
	if resolveDir == nil {
		resolveDir = ProjectRootDir
	}
	if filename == nil {
		filename = func() string { return domain.DefaultTranscriptFilename }
	}
	return &Sink{
		resolveDir: resolveDir,
		filename:   filename,
	}
}

// Append formats the entry with the current time and appends it to the
// transcript file, creating the file if needed.
func (s *Sink) Append(_ context.Context, docURI string, entry domain.TranscriptEntry) (string, error) {
	dir := s.resolveDir(uriPath(docURI))
	path := filepath.Join(dir, s.filename())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("open transcript file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry.Format(time.Now())); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	return path, nil
}

// ProjectRootDir is the default output directory strategy: the
// directory preceding the last "/test/" or "/src/" segment of the
// document path, else the document's parent directory, else the system
// temp directory. Responses land at the project root rather than next
// to deeply nested request files.
func ProjectRootDir(docPath string) string {
	if docPath == "" {
		return os.TempDir()
	}
	if i := strings.LastIndex(docPath, "/test/"); i >= 0 {
		return docPath[:i]
	}
	if i := strings.LastIndex(docPath, "/src/"); i >= 0 {
		return docPath[:i]
	}
	if dir := filepath.Dir(docPath); dir != "." {
		return dir
	}
	return os.TempDir()
}

// uriPath extracts the filesystem path from a file URI. Non-file
// schemes (untitled buffers, virtual documents) yield an empty path so
// the directory strategy can pick a fallback.
func uriPath(docURI string) string {
	u, err := url.Parse(docURI)
	if err != nil || u.Scheme != "file" {
		return ""
	}
	return u.Path
}
