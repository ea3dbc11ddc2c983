package service

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"

	"github.com/tmc/langchaingo/textsplitter"
)

// DefaultSeparators is the hierarchy the chunker tries in order: paragraph
// boundaries, line breaks, sentence terminators, then plain whitespace.
var DefaultSeparators = []string{"\n\n", "\n", ".", " "}

// Chunker splits raw text into an ordered sequence of overlapping chunks.
// Splitting is deterministic: identical input and configuration always
// produce an identical sequence.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
}

// NewChunker creates a Chunker. chunkOverlap must be non-negative and
// strictly smaller than chunkSize. Nil separators fall back to
// DefaultSeparators.
func NewChunker(chunkSize, chunkOverlap int, separators []string) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("chunk size must be positive, got %d", chunkSize))
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, domain.NewInvalidInputError(fmt.Sprintf(
			"chunk overlap must be in [0, %d), got %d", chunkSize, chunkOverlap))
	}
	if separators == nil {
		separators = DefaultSeparators
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithSeparators(separators),
		textsplitter.WithKeepSeparator(true),
	)

	return &Chunker{splitter: splitter}, nil
}

// Split breaks text into ordered TextChunks. Empty or whitespace-only input
// yields an empty sequence.
func (c *Chunker) Split(text string) ([]domain.TextChunk, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.TextChunk{}, nil
	}

	parts, err := c.splitter.SplitText(text)
	if err != nil {
		return nil, domain.NewInternalError("failed to split text", err)
	}

	chunks := make([]domain.TextChunk, 0, len(parts))
	for i, part := range parts {
		chunks = append(chunks, domain.TextChunk{
			Content: part,
			Index:   i,
			Length:  len(part),
		})
	}
	return chunks, nil
}
