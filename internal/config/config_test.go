package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SERVER_PORT", "SERVER_ENV", "PING_MESSAGE", "CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
}

// clearEnv blanks every key for the test; viper treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestFromViper_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromViper(viper.New())
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "development", cfg.Server.Env)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "ping", cfg.Ping.Message)
	require.Empty(t, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, 100, cfg.RateLimit.Requests)
	require.Equal(t, time.Minute, cfg.RateLimit.Window)
	require.Equal(t, "localhost", cfg.Redis.Host)
	require.Equal(t, "6379", cfg.Redis.Port)
}

func TestFromViper_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("PING_MESSAGE", "pong")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REDIS_DB", "2")

	cfg := FromViper(viper.New())
	require.Equal(t, "3000", cfg.Server.Port)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, "pong", cfg.Ping.Message)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 5, cfg.RateLimit.Requests)
	require.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	require.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PING_MESSAGE=hello from file\nSERVER_PORT=9090\n"), 0o600))
	chdir(t, dir)

	cfg := Load()
	require.Equal(t, "hello from file", cfg.Ping.Message)
	require.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_MissingDotEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()
	require.Equal(t, "ping", cfg.Ping.Message)
}

// chdir changes the working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
