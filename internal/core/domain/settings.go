package domain

import (
	"strings"
	"time"
)

// Settings defaults and bounds.
const (
	// DefaultTimeoutSeconds bounds each HTTP call unless configured.
	DefaultTimeoutSeconds = 30

	// MinTimeoutSeconds and MaxTimeoutSeconds clamp configured timeouts.
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300

	// DefaultTranscriptFilename is the transcript file created in the
	// resolved output directory.
	DefaultTranscriptFilename = "http-responses.http"
)

// RequestSettings holds outbound request behaviour.
type RequestSettings struct {
	// TimeoutSeconds bounds each HTTP call.
	TimeoutSeconds int
}

// Timeout returns the configured timeout as a duration.
func (r RequestSettings) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// TranscriptSettings holds transcript sink configuration.
type TranscriptSettings struct {
	// Filename is the transcript file name. It must be a bare file
	// name; the directory is derived from the triggering document.
	Filename string
}

// LogSettings holds server logging configuration.
type LogSettings struct {
	// Verbosity raises or lowers log detail. Zero is the quiet
	// default; higher values add info and debug output.
	Verbosity int

	// File routes log output to a path instead of stderr when set.
	// Standard output always stays reserved for protocol frames.
	File string
}

// Settings holds all server settings.
type Settings struct {
	// Request holds outbound request behaviour.
	Request RequestSettings

	// Transcript holds transcript sink configuration.
	Transcript TranscriptSettings

	// Log holds logging configuration.
	Log LogSettings
}

// DefaultSettings returns the settings a server runs with when no
// config file exists.
func DefaultSettings() Settings {
	return Settings{
		Request: RequestSettings{
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Transcript: TranscriptSettings{
			Filename: DefaultTranscriptFilename,
		},
		Log: LogSettings{
			Verbosity: 0,
			File:      "",
		},
	}
}

// Normalised returns a copy with out-of-range or unusable values
// replaced by defaults: the timeout is clamped into its bounds and the
// transcript filename falls back to the default when empty or when it
// tries to escape into another directory.
func (s Settings) Normalised() Settings {
	out := s
	if out.Request.TimeoutSeconds < MinTimeoutSeconds {
		out.Request.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if out.Request.TimeoutSeconds > MaxTimeoutSeconds {
		out.Request.TimeoutSeconds = MaxTimeoutSeconds
	}
	if !validFilename(out.Transcript.Filename) {
		out.Transcript.Filename = DefaultTranscriptFilename
	}
	return out
}

func validFilename(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
