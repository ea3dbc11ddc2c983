package extract

import (
	"fmt"
	"os"

	"quizforge/internal/domain"
)

// extractMarkdown reads the file as-is. Markdown is already plain text; the
// chunker's separators handle its structure.
func extractMarkdown(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}

	text := normalizeText(string(b))
	if text == "" {
		return "", domain.NewExtractionError(path, fmt.Errorf("markdown file is empty"))
	}
	return text, nil
}
