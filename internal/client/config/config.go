// Package config holds runtime settings for the notes client and the
// layered loading logic: defaults, then environment, then a JSON file,
// then command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the notes CLI.
//
// Retry/await values are policy, not protocol: they mirror the backend
// contract's suggested defaults but may be tuned freely.
type Config struct {
	// APIBaseURL is the base URL of the notes backend, including the
	// /api prefix.
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout bounds every HTTP request, which in turn bounds
	// how long a session can sit in the resolving state.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshAttempts / RefreshInterval drive the bounded identity
	// refresh after a token or code exchange.
	RefreshAttempts uint64        `env:"REFRESH_ATTEMPTS"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// AwaitAttempts / AwaitInterval drive the post-OAuth polling loop
	// that waits for the identity to become visible.
	AwaitAttempts int           `env:"AWAIT_ATTEMPTS"`
	AwaitInterval time.Duration `env:"AWAIT_INTERVAL"`

	// PageSize is the notes listing page size.
	PageSize int `env:"PAGE_SIZE"`

	// AutosaveDelay is the debounce applied to draft autosaving.
	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY"`

	// CredentialsPath is the sqlite file holding persisted credentials.
	CredentialsPath string `env:"CREDENTIALS_PATH"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000/api"
	c.RequestTimeout = 10 * time.Second
	c.RefreshAttempts = 3
	c.RefreshInterval = 1 * time.Second
	c.AwaitAttempts = 5
	c.AwaitInterval = 500 * time.Millisecond
	c.PageSize = 12
	c.AutosaveDelay = 2 * time.Second
	c.CredentialsPath = "notes.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given via -c/-config), and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
