package service

import (
	"context"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
)

// ChunkTag is the topic/difficulty classification of one chunk.
type ChunkTag struct {
	Topic      string
	Difficulty string
}

// ChunkTagger asks the content-generation service to classify chunks so the
// batch call can be fed per-chunk topic and difficulty pools instead of the
// global defaults. Tagging failures fall back to the defaults; they never
// fail the pipeline.
type ChunkTagger struct {
	generator domain.TextGenerator
}

// NewChunkTagger creates a ChunkTagger.
func NewChunkTagger(generator domain.TextGenerator) *ChunkTagger {
	return &ChunkTagger{generator: generator}
}

// Tag classifies one chunk. The reply is loosely structured prose, not
// JSON, so parsing is line-oriented and forgiving.
func (t *ChunkTagger) Tag(ctx context.Context, chunk domain.TextChunk) ChunkTag {
	tag := ChunkTag{Topic: DefaultTopic, Difficulty: DefaultDifficulty}

	reply, err := t.generator.GenerateText(ctx, taggerSystemInstruction, buildTaggerUserPrompt(chunk.Content))
	if err != nil {
		logger.Get().Warn("Chunk tagging failed, using defaults",
			zap.Int("chunk_index", chunk.Index),
			zap.Error(err))
		return tag
	}

	if topic, difficulty := parseTagReply(reply); topic != "" || difficulty != "" {
		if topic != "" {
			tag.Topic = topic
		}
		if difficulty != "" {
			tag.Difficulty = difficulty
		}
	}
	return tag
}

// TagAll classifies every chunk in order and returns parallel topic and
// difficulty slices shaped for GenerateBatch.
func (t *ChunkTagger) TagAll(ctx context.Context, chunks []domain.TextChunk) (topics, difficulties []string) {
	topics = make([]string, len(chunks))
	difficulties = make([]string, len(chunks))
	for i, chunk := range chunks {
		tag := t.Tag(ctx, chunk)
		topics[i] = tag.Topic
		difficulties[i] = tag.Difficulty
	}
	return topics, difficulties
}

// parseTagReply pulls the topic tag and difficulty level out of the loosely
// structured reply. Expected shapes include "1. Topic tag: X" and
// "Difficulty level: Intermediate", but any line mentioning a known
// difficulty literal counts.
func parseTagReply(reply string) (topic, difficulty string) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "topic"):
			if v := valueAfterColon(line); v != "" {
				topic = v
			}
		case strings.Contains(lower, "difficulty"):
			if v := normalizeDifficulty(valueAfterColon(line)); v != "" {
				difficulty = v
			} else if v := normalizeDifficulty(line); v != "" {
				difficulty = v
			}
		}
	}
	return topic, difficulty
}

func valueAfterColon(line string) string {
	idx := strings.Index(line, ":")
	if idx == -1 {
		return ""
	}
	return strings.Trim(strings.TrimSpace(line[idx+1:]), "*_")
}

func normalizeDifficulty(s string) string {
	lower := strings.ToLower(s)
	for _, level := range []string{"Beginner", "Intermediate", "Expert"} {
		if strings.Contains(lower, strings.ToLower(level)) {
			return level
		}
	}
	return ""
}
