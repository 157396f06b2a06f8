package answer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sant0-9/expert/internal/config"
	"github.com/sant0-9/expert/internal/llm"
	"github.com/sant0-9/expert/internal/persona"
)

// ErrEmptyCompletion is reported when the model answers with no text
var ErrEmptyCompletion = errors.New("the model returned an empty answer")

// Settings is everything Generate needs besides the question.
// The key is resolved once at startup and handed in here.
type Settings struct {
	APIKey      string
	Model       string
	Temperature float64
	// Timeout bounds a single completion call. Zero means no extra deadline.
	Timeout time.Duration
}

// Generator turns a question and a persona into an answer
type Generator struct {
	settings Settings
	provider llm.Provider
	log      *zap.Logger
}

// NewGenerator creates a generator. provider may be nil when no key is
// configured; Generate then reports a config error without calling it.
func NewGenerator(settings Settings, provider llm.Provider, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		settings: settings,
		provider: provider,
		log:      log.With(zap.String("module", "answer")),
	}
}

// Generate asks the model question in the voice of personaID.
// It never panics and always returns a Result with non-empty Text.
func (g *Generator) Generate(ctx context.Context, question, personaID string) Result {
	if g.settings.APIKey == "" || g.provider == nil {
		g.log.Warn("api key missing, skipping completion call")
		return ConfigError(fmt.Sprintf(
			"API key is not configured. Set %s in the secrets file or as an environment variable.",
			config.APIKeyName))
	}

	req := g.buildRequest(question, personaID)
	log := g.log.With(zap.String("request_id", uuid.NewString()[:8]))

	if g.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.settings.Timeout)
		defer cancel()
	}

	log.Info("requesting completion",
		zap.String("provider", g.provider.Name()),
		zap.String("model", req.Model),
		zap.String("persona", personaID),
		zap.Int("question_len", len(question)),
	)

	start := time.Now()
	resp, err := g.complete(ctx, req)
	elapsed := time.Since(start)

	if err == nil && resp.Content == "" {
		err = ErrEmptyCompletion
	}
	if err != nil {
		log.Error("completion failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return InvocationError(err)
	}

	log.Info("completion received",
		zap.Duration("elapsed", elapsed),
		zap.String("finish_reason", resp.FinishReason),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return Success(resp.Content)
}

// buildRequest pairs the persona instruction with the question, verbatim
func (g *Generator) buildRequest(question, personaID string) *llm.CompletionRequest {
	req := llm.NewRequest(g.settings.Model, persona.Resolve(personaID), question)
	temperature := g.settings.Temperature
	req.Temperature = &temperature
	return req
}

// complete shields callers from a provider panic
func (g *Generator) complete(ctx context.Context, req *llm.CompletionRequest) (resp *llm.CompletionResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("provider panic: %v", r)
		}
	}()

	resp, err = g.provider.Complete(ctx, req)
	if err == nil && resp == nil {
		err = errors.New("provider returned no response")
	}
	return resp, err
}
