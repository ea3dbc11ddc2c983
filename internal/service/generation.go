package service

import (
	"context"

	"quizforge/internal/domain"
	"quizforge/internal/logger"
	"quizforge/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTopic fills topic slots the caller left unspecified.
	DefaultTopic = "General"
	// DefaultDifficulty fills difficulty slots the caller left unspecified.
	DefaultDifficulty = "Intermediate"
)

// GenerationOrchestrator drives the content-generation service chunk by
// chunk and turns its untrusted replies into quiz records. Failures never
// cross this boundary: a chunk that cannot be generated or parsed becomes
// an error-tagged record in the output sequence.
type GenerationOrchestrator struct {
	generator domain.TextGenerator
	// batchSize bounds the generation worker pool; 1 or less means the
	// plain sequential loop.
	batchSize int
}

// NewGenerationOrchestrator creates a GenerationOrchestrator.
func NewGenerationOrchestrator(generator domain.TextGenerator, batchSize int) *GenerationOrchestrator {
	return &GenerationOrchestrator{
		generator: generator,
		batchSize: batchSize,
	}
}

// GenerateOne produces the quiz record for a single chunk. The returned
// record is an error record when the service call or the reply parse fails;
// it is never nil and this method never returns an error.
func (o *GenerationOrchestrator) GenerateOne(ctx context.Context, chunk domain.TextChunk, topic, difficulty string) *domain.QuizRecord {
	if topic == "" {
		topic = DefaultTopic
	}
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	reply, err := o.generator.GenerateText(ctx, quizSystemInstruction, buildQuizUserPrompt(chunk.Content, topic, difficulty))
	if err != nil {
		logger.Get().Error("Content generation failed for chunk",
			zap.Int("chunk_index", chunk.Index),
			zap.String("topic", topic),
			zap.Error(err))
		return o.errorRecord(chunk, topic, difficulty, "Quiz generation failed for this chunk", "")
	}

	record, err := parseQuizReply(reply)
	if err != nil {
		logger.Get().Warn("Failed to parse generated content",
			zap.Int("chunk_index", chunk.Index),
			zap.String("topic", topic),
			zap.Error(err))
		return o.errorRecord(chunk, topic, difficulty, "Failed to parse JSON", reply)
	}

	record.ID = util.NewULID()
	record.ChunkIndex = chunk.Index
	record.ChunkPreview = chunk.Preview()
	if record.Topic == "" {
		record.Topic = topic
	}
	if record.Difficulty == "" {
		record.Difficulty = difficulty
	}
	return record
}

// GenerateBatch produces one record per chunk, preserving chunk order.
// Topics and difficulties shorter than chunks are padded with the defaults.
// Individual failures downgrade their record; the batch itself never aborts.
// When the configured batch size is above one, chunks are generated by a
// bounded worker pool and reassembled in order.
func (o *GenerationOrchestrator) GenerateBatch(ctx context.Context, chunks []domain.TextChunk, topics, difficulties []string) []*domain.QuizRecord {
	records := make([]*domain.QuizRecord, len(chunks))

	pick := func(values []string, i int, fallback string) string {
		if i < len(values) && values[i] != "" {
			return values[i]
		}
		return fallback
	}

	if o.batchSize <= 1 {
		for i, chunk := range chunks {
			records[i] = o.GenerateOne(ctx, chunk, pick(topics, i, DefaultTopic), pick(difficulties, i, DefaultDifficulty))
		}
		return records
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.batchSize)
	for i, chunk := range chunks {
		g.Go(func() error {
			records[i] = o.GenerateOne(ctx, chunk, pick(topics, i, DefaultTopic), pick(difficulties, i, DefaultDifficulty))
			return nil
		})
	}
	// Workers only ever return nil; Wait is a join point.
	_ = g.Wait()

	return records
}

func (o *GenerationOrchestrator) errorRecord(chunk domain.TextChunk, topic, difficulty, reason, rawContent string) *domain.QuizRecord {
	return &domain.QuizRecord{
		ID:           util.NewULID(),
		Topic:        topic,
		Difficulty:   difficulty,
		ChunkIndex:   chunk.Index,
		ChunkPreview: chunk.Preview(),
		Error:        reason,
		RawContent:   rawContent,
	}
}
