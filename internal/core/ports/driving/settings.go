package driving

import "github.com/cramhead/http-client/internal/core/domain"

// SettingsService provides current server settings.
type SettingsService interface {
	// Get returns the current settings, normalised. It reads through to
	// the config store on every call so a live config edit takes effect
	// on the next request.
	Get() domain.Settings

	// GetDefaults returns the built-in defaults.
	GetDefaults() domain.Settings
}
