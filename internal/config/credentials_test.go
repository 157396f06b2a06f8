package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		secrets    Secrets
		env        map[string]string
		wantValue  string
		wantSource string
	}{
		{
			name:       "secrets win over env",
			secrets:    Secrets{APIKeyName: "sk-secret"},
			env:        map[string]string{APIKeyName: "sk-env"},
			wantValue:  "sk-secret",
			wantSource: SourceSecrets,
		},
		{
			name:       "env fallback",
			secrets:    Secrets{},
			env:        map[string]string{APIKeyName: "sk-env"},
			wantValue:  "sk-env",
			wantSource: SourceEnv,
		},
		{
			name:       "blank secret falls through",
			secrets:    Secrets{APIKeyName: "  "},
			env:        map[string]string{APIKeyName: "sk-env"},
			wantValue:  "sk-env",
			wantSource: SourceEnv,
		},
		{
			name:    "nothing set",
			secrets: nil,
			env:     map[string]string{},
		},
		{
			name:    "blank env",
			secrets: Secrets{"OTHER": "x"},
			env:     map[string]string{APIKeyName: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAPIKey(tt.secrets, envFrom(tt.env))
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantSource != "", got.Found())
		})
	}
}

func TestResolveAPIKeyNilEnv(t *testing.T) {
	got := ResolveAPIKey(Secrets{}, nil)
	assert.False(t, got.Found())
}

func TestLoadSecrets(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadSecrets(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, missing)

	path := filepath.Join(dir, "secrets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY: sk-from-file\n"), 0600))

	secrets, err := LoadSecrets(path)
	require.NoError(t, err)
	v, ok := secrets.Lookup(APIKeyName)
	assert.True(t, ok)
	assert.Equal(t, "sk-from-file", v)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- not\n- a map\n"), 0600))
	_, err = LoadSecrets(bad)
	assert.Error(t, err)
}

func TestCredentialMasked(t *testing.T) {
	assert.Equal(t, "Not set", Credential{}.Masked())
	assert.Equal(t, "****", Credential{Value: "short"}.Masked())
	assert.Equal(t, "sk-a****wxyz", Credential{Value: "sk-abcdefghwxyz"}.Masked())
}
