package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROFILE_PATH", "./testdata/profile.yaml")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, 10*time.Minute, cfg.GitHub.CacheTTL())
	assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout())
	assert.Equal(t, 5*time.Second, cfg.Carousel.Interval())
	assert.False(t, cfg.Carousel.StickyPause)
	assert.False(t, cfg.Proxy.Settings().HasProxy())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PROFILE_PATH", "/srv/profile.json")
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("GITHUB_CACHE_TTL", "30")
	t.Setenv("CAROUSEL_INTERVAL_MS", "1500")
	t.Setenv("CAROUSEL_STICKY_PAUSE", "true")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOST", "proxy.local")
	t.Setenv("PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "/srv/profile.json", cfg.Profile.Path)
	assert.Equal(t, "octocat", cfg.GitHub.Username)
	assert.Equal(t, 30*time.Second, cfg.GitHub.CacheTTL())
	assert.Equal(t, 1500*time.Millisecond, cfg.Carousel.Interval())
	assert.True(t, cfg.Carousel.StickyPause)
	assert.Equal(t, "http://proxy.local:3128", cfg.Proxy.Settings().HostPort())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
PROFILE_PATH=./content/profile.yaml
CAROUSEL_INTERVAL_MS=8000
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "./content/profile.yaml", cfg.Profile.Path)
	assert.Equal(t, 8*time.Second, cfg.Carousel.Interval())
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("PROFILE_PATH")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: PROFILE_PATH")
}

// TestLoad_InvalidInterval verifies that a non-positive autoplay period is rejected.
func TestLoad_InvalidInterval(t *testing.T) {
	t.Setenv("PROFILE_PATH", "./profile.yaml")
	t.Setenv("CAROUSEL_INTERVAL_MS", "0")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CAROUSEL_INTERVAL_MS")
}

// TestLoad_InvalidGitHubDurations verifies that non-positive GitHub TTL and timeout are rejected.
func TestLoad_InvalidGitHubDurations(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "ZeroCacheTTL", key: "GITHUB_CACHE_TTL", value: "0"},
		{name: "NegativeCacheTTL", key: "GITHUB_CACHE_TTL", value: "-60"},
		{name: "ZeroTimeout", key: "GITHUB_TIMEOUT", value: "0"},
		{name: "NegativeTimeout", key: "GITHUB_TIMEOUT", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROFILE_PATH", "./profile.yaml")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load(".")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
