package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"notes-cli"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:4000/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, uint64(3), cfg.RefreshAttempts)
	assert.Equal(t, 1*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.AwaitAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.AwaitInterval)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 2*time.Second, cfg.AutosaveDelay)
	assert.Equal(t, "notes.db", cfg.CredentialsPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t, nil)
	t.Setenv("NOTES_API_BASE_URL", "https://notes.example.com/api")
	t.Setenv("NOTES_REQUEST_TIMEOUT", "15s")
	t.Setenv("NOTES_AWAIT_ATTEMPTS", "7")

	cfg := LoadConfig()

	assert.Equal(t, "https://notes.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7, cfg.AwaitAttempts)
	// untouched fields keep defaults
	assert.Equal(t, 12, cfg.PageSize)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("NOTES_API_BASE_URL", "https://env.example.com/api")
	withArgs(t, []string{"-a", "https://flag.example.com/api", "-t", "20", "-p", "24"})

	cfg := LoadConfig()

	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24, cfg.PageSize)
}

func TestLoadConfig_JsonLayer(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "cfg*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{
		"api_base_url": "https://json.example.com/api",
		"await_interval": "250ms",
		"refresh_attempts": 5
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	withArgs(t, []string{"-c", f.Name()})

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.AwaitInterval)
	assert.Equal(t, uint64(5), cfg.RefreshAttempts)
	assert.Equal(t, "notes.db", cfg.CredentialsPath)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "cfg*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{"api_base_url": "https://json.example.com/api"}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	withArgs(t, []string{"-c", f.Name(), "-a", "https://flag.example.com/api"})

	cfg := LoadConfig()
	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
}
