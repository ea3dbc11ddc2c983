package textgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiGenerator implements the domain.TextGenerator port on the Google
// Gemini API. Unlike the LangchainGo-backed providers, the system
// instruction is carried on the model itself, so each call clones the base
// model before attaching it.
type GeminiGenerator struct {
	client         *genai.Client
	modelName      string
	temperature    float32
	requestTimeout time.Duration
}

var _ domain.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new GeminiGenerator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, temperature float64, requestTimeout time.Duration) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:         client,
		modelName:      modelName,
		temperature:    float32(temperature),
		requestTimeout: requestTimeout,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// GenerateText sends the instruction pair to Gemini and returns the
// concatenated text parts of the first candidate.
func (g *GeminiGenerator) GenerateText(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	if g.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.requestTimeout)
		defer cancel()
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(g.temperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			logger.Get().Error("Gemini request timed out", zap.Duration("timeout", g.requestTimeout))
		}
		return "", domain.NewGenerationServiceError(fmt.Errorf("gemini call failed: %w", err))
	}

	text := responseText(resp)
	if text == "" {
		return "", domain.NewGenerationServiceError(fmt.Errorf("gemini returned no text candidates"))
	}
	return text, nil
}

// responseText collects the text parts of the first candidate. Non-text
// parts are skipped.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
