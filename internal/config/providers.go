package config

// ProviderInfo describes an OpenAI-compatible chat completion endpoint
type ProviderInfo struct {
	ID           string
	Name         string
	BaseURL      string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "openai",
		Name:         "OpenAI",
		BaseURL:      "https://api.openai.com/v1",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-3.5-turbo", "gpt-4o-mini", "gpt-4o"},
		DefaultModel: "gpt-3.5-turbo",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		BaseURL:      "https://openrouter.ai/api/v1",
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"openai/gpt-3.5-turbo", "openai/gpt-4o-mini", "meta-llama/llama-3.1-70b-instruct"},
		DefaultModel: "openai/gpt-3.5-turbo",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		BaseURL:      "https://api.groq.com/openai/v1",
		SignupURL:    "https://console.groq.com/keys",
		Models:       []string{"llama-3.1-70b-versatile", "llama-3.1-8b-instant"},
		DefaultModel: "llama-3.1-70b-versatile",
	},
	{
		// BaseURL comes from the config file
		ID:   "custom",
		Name: "Custom",
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
