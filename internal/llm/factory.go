package llm

import (
	"fmt"

	"github.com/sant0-9/expert/internal/config"
)

// NewProvider creates a provider from config. apiKey may be empty; the
// caller decides whether a keyless provider is usable.
func NewProvider(cfg *config.Config, apiKey string) (Provider, error) {
	info := config.GetProvider(cfg.Provider)
	if info == nil {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	baseURL := info.BaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("%s provider requires base_url", info.ID)
	}

	model := cfg.Model
	if model == "" {
		model = info.DefaultModel
	}

	return NewCompatibleProvider(info.ID, baseURL, apiKey, model), nil
}
