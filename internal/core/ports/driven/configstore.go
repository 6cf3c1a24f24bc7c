package driven

import "context"

// ConfigStore provides access to application configuration.
// Keys use dot notation matching the TOML table layout, e.g. "display.show_steps".
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

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// SetMany stores several values and persists them in a single write.
	SetMany(values map[string]any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// ConfigWatcher reloads configuration when its backing storage changes.
type ConfigWatcher interface {
	// Watch blocks until ctx is cancelled, reloading on every change and
	// invoking onChange afterwards. onChange may be nil.
	Watch(ctx context.Context, onChange func()) error
}
