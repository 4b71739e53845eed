package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(envHome, home)
	t.Setenv(envBackend, "")
	// keep a stray .env in the package dir from leaking in
	t.Chdir(t.TempDir())
	return home
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	home := setupHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)
	assert.Equal(t, DefaultBackendURL, cfg.GetBaseURL())
	assert.Equal(t, DefaultQuickCommands, cfg.GetQuickCommands())
	assert.True(t, cfg.IsValid())
	assert.Equal(t, filepath.Join(home, ".aipros"), cfg.Dir())

	info, err := os.Stat(filepath.Join(home, ".aipros", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfig_ExistingFile(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, ".aipros")
	require.NoError(t, os.MkdirAll(dir, 0755))

	raw, err := json.Marshal(map[string]any{
		"active_profile": "lab",
		"profiles": map[string]any{
			"default": map[string]any{"base_url": "http://127.0.0.1:8000"},
			"lab":     map[string]any{"base_url": "http://10.0.0.5:9000", "quick_commands": []string{"🔥 Restart Server"}},
		},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), raw, 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "lab", cfg.ActiveProfile)
	assert.Equal(t, "http://10.0.0.5:9000", cfg.GetBaseURL())
	assert.Equal(t, []string{"🔥 Restart Server"}, cfg.GetQuickCommands())
	assert.Equal(t, []string{"default", "lab"}, cfg.ProfileNames())
}

func TestLoadConfig_UnknownActiveProfileFallsBack(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, ".aipros")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"active_profile":"gone","profiles":{"b":{"base_url":"http://b:1"},"a":{"base_url":"http://a:1"}}}`), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.ActiveProfile)
	assert.Equal(t, "http://a:1", cfg.GetBaseURL())
}

func TestLoadConfig_NoProfiles(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, ".aipros")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"profiles":{}}`), 0600))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv(envBackend, "https://aipros.example:8443")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://aipros.example:8443", cfg.GetBaseURL())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	setupHome(t)
	require.NoError(t, os.Unsetenv(envBackend))
	require.NoError(t, os.WriteFile(".env", []byte(envBackend+"=http://from-dotenv:8000\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv(envBackend) })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:8000", cfg.GetBaseURL())
}

func TestSaveAndUse(t *testing.T) {
	setupHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Profiles["lab"] = Profile{BaseURL: "http://lab:8000"}
	require.NoError(t, cfg.Use("lab"))
	require.NoError(t, cfg.Save())
	assert.Error(t, cfg.Use("missing"))

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "lab", reloaded.ActiveProfile)
	assert.Equal(t, "http://lab:8000", reloaded.GetBaseURL())
}

func TestValidateBaseURL(t *testing.T) {
	assert.NoError(t, ValidateBaseURL("http://127.0.0.1:8000"))
	assert.NoError(t, ValidateBaseURL("https://aipros.example"))
	assert.Error(t, ValidateBaseURL(""))
	assert.Error(t, ValidateBaseURL("ftp://host"))
	assert.Error(t, ValidateBaseURL("localhost:8000"))
	assert.Error(t, ValidateBaseURL("http://"))
}
