package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with NOTES_-prefixed environment variables,
// e.g. NOTES_API_BASE_URL, NOTES_REQUEST_TIMEOUT=15s.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "NOTES_"}); err != nil {
		panic(err)
	}
}
