package textgen

import (
	"context"
	"fmt"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// OpenAIGenerator implements the domain.TextGenerator port on top of the
// OpenAI chat completion API via LangchainGo.
type OpenAIGenerator struct {
	llm            *openaiLLM.LLM
	temperature    float64
	requestTimeout time.Duration
}

var _ domain.TextGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a new OpenAIGenerator.
func NewOpenAIGenerator(apiKey, modelName string, temperature float64, requestTimeout time.Duration) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "gpt-3.5-turbo"
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}

	return &OpenAIGenerator{
		llm:            llm,
		temperature:    temperature,
		requestTimeout: requestTimeout,
	}, nil
}

// GenerateText sends the instruction pair as a system/human message pair and
// returns the model reply verbatim. The reply carries no structural
// guarantee.
func (g *OpenAIGenerator) GenerateText(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
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
			logger.Get().Error("OpenAI request timed out", zap.Duration("timeout", g.requestTimeout))
		}
		return "", domain.NewGenerationServiceError(fmt.Errorf("openai call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewGenerationServiceError(fmt.Errorf("openai returned no choices"))
	}

	return resp.Choices[0].Content, nil
}
