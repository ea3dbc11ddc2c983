package textgen

import (
	"context"
	"fmt"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaGenerator implements the domain.TextGenerator port against a local
// Ollama server via LangchainGo.
type OllamaGenerator struct {
	llm            *ollamaLLM.LLM
	temperature    float64
	requestTimeout time.Duration
}

var _ domain.TextGenerator = (*OllamaGenerator)(nil)

// NewOllamaGenerator creates a new OllamaGenerator. serverURL may be empty,
// in which case the LangchainGo default (http://localhost:11434) applies.
func NewOllamaGenerator(serverURL, modelName string, temperature float64, requestTimeout time.Duration) (*OllamaGenerator, error) {
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	opts := []ollamaLLM.Option{ollamaLLM.WithModel(modelName)}
	if serverURL != "" {
		opts = append(opts, ollamaLLM.WithServerURL(serverURL))
	}

	llm, err := ollamaLLM.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}

	return &OllamaGenerator{
		llm:            llm,
		temperature:    temperature,
		requestTimeout: requestTimeout,
	}, nil
}

// GenerateText sends the instruction pair to the Ollama server and returns
// the reply verbatim.
func (g *OllamaGenerator) GenerateText(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	if g.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.requestTimeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemInstruction),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := g.llm.GenerateContent(ctx, messages, llms.WithTemperature(g.temperature))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			logger.Get().Error("Ollama request timed out", zap.Duration("timeout", g.requestTimeout))
		}
		return "", domain.NewGenerationServiceError(fmt.Errorf("ollama call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewGenerationServiceError(fmt.Errorf("ollama returned no choices"))
	}

	return resp.Choices[0].Content, nil
}
