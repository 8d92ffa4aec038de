package services

import (
	"github.com/cramhead/http-client/internal/core/domain"
	"github.com/cramhead/http-client/internal/core/ports/driven"
	"github.com/cramhead/http-client/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRequestTimeout     = "request.timeout_seconds"
	keyTranscriptFilename = "transcript.filename"
	keyLogVerbosity       = "log.verbosity"
	keyLogFile            = "log.file"
)

// SettingsService exposes server settings. Values are read from the
// config store on every Get so a reloaded config takes effect without a
// restart.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings, normalised so callers never see an
// out-of-range timeout or an unusable transcript filename.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		Request: domain.RequestSettings{
			TimeoutSeconds: s.getInt(keyRequestTimeout, defaults.Request.TimeoutSeconds),
		},
		Transcript: domain.TranscriptSettings{
			Filename: s.getString(keyTranscriptFilename, defaults.Transcript.Filename),
		},
		Log: domain.LogSettings{
			Verbosity: s.configStore.GetInt(keyLogVerbosity),
			File:      s.configStore.GetString(keyLogFile),
		},
	}

	return settings.Normalised()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}
