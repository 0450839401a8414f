package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"storage_dir": "/var/lib/cvgen",
		"template": "classic",
		"variant": "classic",
		"primary_color": "#112233",
		"browser_timeout_secs": 45,
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/cvgen", cfg.StorageDir)
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, "classic", cfg.Variant)
	assert.Equal(t, "#112233", cfg.PrimaryColor)
	assert.Equal(t, 45, cfg.BrowserTimeoutSecs)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"variant":`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()

	assert.NotEmpty(t, cfg.StorageDir)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "modern", cfg.Variant)
	assert.Equal(t, DefaultBrowserTimeout, cfg.BrowserTimeoutSecs)
}

func TestWithDefaults_EnvOverridesStorageDir(t *testing.T) {
	t.Setenv("CVGEN_STORAGE_DIR", "/tmp/cvgen-test")

	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, "/tmp/cvgen-test", cfg.StorageDir)
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := (&Config{StorageDir: "/data", Variant: "minimal", BrowserTimeoutSecs: 5}).WithDefaults()

	assert.Equal(t, "/data", cfg.StorageDir)
	assert.Equal(t, "minimal", cfg.Variant)
	assert.Equal(t, 5, cfg.BrowserTimeoutSecs)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Variant: "minimal"}).Validate())
	assert.Error(t, (&Config{Variant: "brutalist"}).Validate())
	assert.Error(t, (&Config{BrowserTimeoutSecs: -1}).Validate())
}
