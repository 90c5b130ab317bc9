package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{EnvBackend, EnvAPIURL, EnvDBPath, EnvSocket, EnvBoard, EnvLogLevel, EnvThemeFile} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "todoboard")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddCard)
	assert.Equal(t, "space", defaults.ToggleColumn)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, DefaultBoard, cfg.Board)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, filepath.Join(dir, ".todoboard", "board.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, ".todoboard", "todoboard.sock"), cfg.SocketPath)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `backend: rest
api_url: http://localhost:5000
timeout: 3s
poll_interval: 500ms
log_level: debug
key_mappings:
  quit: "x"
  add_card: "n"
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendREST, cfg.Backend)
	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddCard)
	assert.Equal(t, "e", cfg.KeyMappings.EditCard, "unspecified keys use defaults")

	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, MonochromeColorScheme().Normal, cfg.ColorScheme.Normal, "unset colors come from the preset")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "backend: local\nboard: home\n")

	t.Setenv(EnvBackend, BackendRealtime)
	t.Setenv(EnvBoard, "work")
	t.Setenv(EnvDBPath, "/tmp/board.db")
	t.Setenv(EnvSocket, "/tmp/board.sock")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRealtime, cfg.Backend)
	assert.Equal(t, "work", cfg.Board)
	assert.Equal(t, "/tmp/board.db", cfg.DBPath)
	assert.Equal(t, "/tmp/board.sock", cfg.SocketPath)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown backend", content: "backend: firebase\n", wantErr: ErrUnknownBackend},
		{name: "rest without url", content: "backend: rest\n", wantErr: ErrMissingAPIURL},
		{name: "bad log level", content: "log_level: loud\n"},
		{name: "negative poll interval", content: "poll_interval: -1s\n"},
		{name: "malformed yaml", content: "backend: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := Load()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)

	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
`), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.Equal(t, DefaultColorScheme().Delete, cfg.ColorScheme.Delete)
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvThemeFile, filepath.Join(dir, "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultColorScheme().Accent, cfg.ColorScheme.Accent)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		Backend:      BackendRealtime,
		Board:        "team",
		PollInterval: 5 * time.Second,
		KeyMappings:  KeyMappings{Quit: "x", AddCard: "n"},
	}
	cfg.applyDefaults()
	require.NoError(t, cfg.Save())

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "todoboard", "config.yaml"), path)
	assert.FileExists(t, path)

	reloaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "INFO", cfg.Level().String())

	cfg.LogLevel = "warn"
	assert.Equal(t, "WARN", cfg.Level().String())

	cfg.LogLevel = "bogus"
	assert.Equal(t, "INFO", cfg.Level().String())
}
