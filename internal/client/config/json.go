package config

import (
	"encoding/json"
	"os"

	"github.com/gugan-zemuria/notes-app/internal/flagx"
	"github.com/gugan-zemuria/notes-app/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify intervals either as strings like
// "500ms" or as integer nanoseconds. Pointer fields distinguish "absent"
// from zero so the JSON layer only overrides what it names.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	RefreshAttempts *uint64         `json:"refresh_attempts"`
	RefreshInterval *timex.Duration `json:"refresh_interval"`
	AwaitAttempts   *int            `json:"await_attempts"`
	AwaitInterval   *timex.Duration `json:"await_interval"`
	PageSize        *int            `json:"page_size"`
	AutosaveDelay   *timex.Duration `json:"autosave_delay"`
	CredentialsPath *string         `json:"credentials_path"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. If no file is named, nothing happens. Read or
// unmarshal errors panic (caller may recover); a half-applied config is
// worse than a loud failure at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshAttempts != nil {
		cfg.RefreshAttempts = *jc.RefreshAttempts
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.AwaitAttempts != nil {
		cfg.AwaitAttempts = *jc.AwaitAttempts
	}
	if jc.AwaitInterval != nil {
		cfg.AwaitInterval = jc.AwaitInterval.Duration
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.AutosaveDelay != nil {
		cfg.AutosaveDelay = jc.AutosaveDelay.Duration
	}
	if jc.CredentialsPath != nil {
		cfg.CredentialsPath = *jc.CredentialsPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
