package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
[Supabase]
URL = "https://example.supabase.co"
AnonKey = "anon"
Table = "keys"

[Generate]
BatchSize = 20
Workers = 8
ReportIntervalSeconds = 10
`)

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "anon", cfg.Supabase.AnonKey)
	assert.Equal(t, "keys", cfg.Supabase.Table)
	assert.Equal(t, 20, cfg.Generate.BatchSize)
	assert.Equal(t, 8, cfg.Generate.Workers)
	assert.Equal(t, 10, cfg.Generate.ReportIntervalSeconds)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, defaultTable, cfg.Supabase.Table)
	assert.Equal(t, defaultReportInterval, cfg.Generate.ReportIntervalSeconds)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[Supabase]
URL = "https://file.supabase.co"
AnonKey = "file-key"
`)
	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "env-key")

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "env-key", cfg.Supabase.AnonKey)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigBadToml(t *testing.T) {
	path := writeConfig(t, `[Supabase`)
	_, err := loadConfigFile(path)
	assert.Error(t, err)
}
