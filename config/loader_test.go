package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())
	t.Setenv("FOURSQUARE_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, FOURSQUARE_ENDPOINT_BASE, cfg.Places.BaseURL)
	assert.Equal(t, 10, cfg.Limits.NearbyPerMinute)
	assert.Equal(t, 5, cfg.Limits.CommentPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())
	t.Setenv("FOURSQUARE_API_KEY", "  fsq-key \n")
	t.Setenv("DATABASE_URL", "postgres://localhost/food")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_NEARBY", "3")
	t.Setenv("ADMIN_USERNAME", " admin ")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "fsq-key", cfg.Places.APIKey)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Limits.NearbyPerMinute)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROJECT_ROOT", dir)
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	path := filepath.Join(dir, "food-picker.yaml")
	content := "server:\n  port: 7000\nredis:\n  address: localhost:6379\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_AdminCredentialsMustBePaired(t *testing.T) {
	t.Setenv("PROJECT_ROOT", t.TempDir())
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/food-picker")
	assert.Equal(t, "/srv/food-picker/resources/places_search_response.json",
		GetResourcePath(PLACES_SEARCH_RESPONSE_RESOURCE))
}
