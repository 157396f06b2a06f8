package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeyName is the secret and environment variable holding the API key
const APIKeyName = "OPENAI_API_KEY"

// Credential source labels
const (
	SourceSecrets = "secrets"
	SourceEnv     = "env"
)

// Secrets is a flat KEY: value map read from the secrets file
type Secrets map[string]string

// Lookup returns a non-blank secret value
func (s Secrets) Lookup(key string) (string, bool) {
	v, ok := s[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Credential is a resolved API key and where it came from.
// Source is empty when no key was found.
type Credential struct {
	Value  string
	Source string
}

func (c Credential) Found() bool {
	return c.Source != ""
}

// Masked renders the key for display without revealing it
func (c Credential) Masked() string {
	if c.Value == "" {
		return "Not set"
	}
	if len(c.Value) > 8 {
		return c.Value[:4] + "****" + c.Value[len(c.Value)-4:]
	}
	return "****"
}

func SecretsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "secrets.yaml"), nil
}

// LoadSecrets reads the secrets file at path, or the default location when
// path is empty. A missing file yields an empty store.
func LoadSecrets(path string) (Secrets, error) {
	if path == "" {
		p, err := SecretsPath()
		if err != nil {
			return Secrets{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("read secrets: %w", err)
	}

	secrets := Secrets{}
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("parse secrets %s: %w", path, err)
	}
	return secrets, nil
}

// ResolveAPIKey looks the key up in secrets first, then in the environment
func ResolveAPIKey(secrets Secrets, lookupEnv func(string) (string, bool)) Credential {
	if v, ok := secrets.Lookup(APIKeyName); ok {
		return Credential{Value: v, Source: SourceSecrets}
	}
	if lookupEnv != nil {
		if v, ok := lookupEnv(APIKeyName); ok && strings.TrimSpace(v) != "" {
			return Credential{Value: v, Source: SourceEnv}
		}
	}
	return Credential{}
}

// LoadDotEnv loads .env from the working directory into the process
// environment. Variables already set win. It reports whether a file was read.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}
