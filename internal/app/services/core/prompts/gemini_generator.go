package prompts

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxPromptOutputTokens = 80

type geminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

// NewGeminiGenerator returns a generator backed by the Gemini API. Without an
// API key the generator reports itself disabled and every caller falls back.
func NewGeminiGenerator(ctx context.Context, cfg *config.InternalConfig, logger *zap.Logger) (contracts.PromptGenerator, error) {
	generator := &geminiGenerator{
		model:   cfg.AI.Model,
		timeout: time.Duration(cfg.AI.RequestTimeoutSec) * time.Second,
		log:     logger,
	}
	if cfg.AI.APIKey == "" {
		logger.Info("AI prompt generation disabled, no API key configured")
		return generator, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	generator.client = client
	return generator, nil
}

func (g *geminiGenerator) Enabled() bool {
	return g.client != nil
}

func (g *geminiGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	if !g.Enabled() {
		return "", exceptions.ErrAIGenerate(errors.New("generator disabled"))
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		MaxOutputTokens:   maxPromptOutputTokens,
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(instruction), config)
	if err != nil {
		g.log.Warn("geminiGenerator.Generate error calling model",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String("model", g.model),
			zap.Error(err),
		)
		return "", exceptions.ErrAIGenerate(err)
	}

	prompt := strings.TrimSpace(resp.Text())
	if prompt == "" {
		return "", exceptions.ErrAIGenerate(errors.New(constvars.ErrDevAIEmptyResponse))
	}
	return prompt, nil
}
