package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("FOCUS_ATLAS_AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "focus-atlas.db", cfg.DB.Path)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("FOCUS_ATLAS_AUTH_JWT_SECRET", "env-secret")
	t.Setenv("FOCUS_ATLAS_SERVER_PORT", "9999")
	t.Setenv("FOCUS_ATLAS_DB_PATH", "/tmp/other.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "/tmp/other.db", cfg.DB.Path)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"3001\"\nauth:\n  jwt_secret: file-secret\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	// Unset keys keep their defaults.
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("FOCUS_ATLAS_AUTH_JWT_SECRET", "env-secret")
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}
