// Package logging configures the process-wide log backend for the
// language server. Stdout carries the protocol stream, so log output
// must never touch it: everything goes to stderr or, when configured,
// to a file.
package logging

import (
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple" // registers the default backend
)

// Configure initialises the log backend. Verbosity raises the maximum
// level: 0 keeps notices and above, 1 adds info, 2 adds debug. A
// non-empty path routes log output to that file instead of stderr,
// creating parent directories as needed.
func Configure(verbosity int, path string) error {
	if path == "" {
		commonlog.Configure(verbosity, nil)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	commonlog.Configure(verbosity, &path)
	return nil
}
