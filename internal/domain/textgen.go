package domain

import "context"

// TextGenerator is the port to the external content-generation service.
// Implementations send the instruction pair to a model provider and return
// the reply verbatim. The reply carries no structural guarantee: callers
// must treat it as untrusted text and parse-then-validate.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}
