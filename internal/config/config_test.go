package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	// point at an absent file so a developer's real config never leaks in
	t.Setenv("BIGDAY_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5052", cfg.Server.BaseURL)
	require.Equal(t, "R", cfg.UI.CurrencySymbol)
	require.Equal(t, "02 Jan 2006", cfg.UI.DateFormat)
	require.Equal(t, "info", cfg.Log.Level)
	require.NotEmpty(t, cfg.Log.File)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("BIGDAY_SERVER_BASE_URL", "https://wedding.example.com/")
	t.Setenv("BIGDAY_UI_CURRENCY_SYMBOL", "$")
	t.Setenv("BIGDAY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	// trailing slash is trimmed so path joins stay clean
	require.Equal(t, "https://wedding.example.com", cfg.Server.BaseURL)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nbase_url = \"http://10.0.0.5:5052\"\n\n[ui]\ncurrency_symbol = \"€\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("BIGDAY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://10.0.0.5:5052", cfg.Server.BaseURL)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	// unset keys keep their defaults
	require.Equal(t, "02 Jan 2006", cfg.UI.DateFormat)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("BIGDAY_CONFIG", path)

	want := Config{
		Server: ServerConfig{BaseURL: "http://backend:5052"},
		UI:     UIConfig{CurrencySymbol: "R", DateFormat: "2006-01-02"},
		Log:    LogConfig{File: "/tmp/bigday.log", Level: "warn"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
