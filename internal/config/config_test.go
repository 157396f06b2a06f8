package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: groq\nmodel: llama-3.1-8b-instant\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "groq", cfg.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unterminated"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Model = "gpt-4o-mini"
	cfg.TimeoutSeconds = 15

	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 15*time.Second, loaded.Timeout())
}

func TestTimeoutFallsBackWhenUnset(t *testing.T) {
	cfg := &Config{TimeoutSeconds: 0}
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}

func TestGetProvider(t *testing.T) {
	p := GetProvider("openrouter")
	require.NotNil(t, p)
	assert.Equal(t, "https://openrouter.ai/api/v1", p.BaseURL)

	assert.Nil(t, GetProvider("ollama"))
}
