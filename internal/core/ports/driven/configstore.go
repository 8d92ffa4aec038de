package driven

// ConfigStore provides access to server configuration.
// Implementations handle persistence (e.g., TOML files) and type
// conversion, and may reload themselves when the backing file changes.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Load reads configuration from storage. A missing backing file is
	// not an error: the store just presents no keys.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
