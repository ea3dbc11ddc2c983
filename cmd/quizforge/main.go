package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"quizforge/internal/adapter"
	"quizforge/internal/adapter/extract"
	"quizforge/internal/adapter/textgen"
	"quizforge/internal/cache"
	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/export"
	"quizforge/internal/logger"
	"quizforge/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "", "source document (pdf, docx, md, markdown)")
	format := flag.String("format", "package", "export format: json, markdown or package")
	maxChunks := flag.Int("max-chunks", 0, "cap the number of chunks to generate quizzes for (0 = all)")
	tagChunks := flag.Bool("tag", false, "classify each chunk's topic and difficulty before generation")
	topic := flag.String("topic", "", "topic applied to every chunk (overridden by -tag)")
	difficulty := flag.String("difficulty", "", "difficulty applied to every chunk (overridden by -tag)")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: quizforge -file <document> [-format json|markdown|package] [-max-chunks N] [-tag]")
		os.Exit(2)
	}

	// .env is optional; viper reads the environment afterwards.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config(cfg.Logger)); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("quizforge starting up", zap.String("file", *filePath), zap.String("format", *format))

	ctx := context.Background()

	// Extract the document text.
	extractor := extract.NewFileExtractor(cfg.Source.MaxFileSizeMB)
	text, err := extractor.ExtractText(*filePath)
	if err != nil {
		log.Fatal("Failed to extract document text", zap.String("file", *filePath), zap.Error(err))
	}
	log.Info("Extracted document text", zap.Int("characters", len(text)))

	// Chunk it.
	chunker, err := service.NewChunker(cfg.Chunking.Size, cfg.Chunking.Overlap, nil)
	if err != nil {
		log.Fatal("Invalid chunking configuration", zap.Error(err))
	}
	chunks, err := chunker.Split(text)
	if err != nil {
		log.Fatal("Failed to chunk document text", zap.Error(err))
	}
	log.Info("Created text chunks", zap.Int("chunks", len(chunks)))

	if *maxChunks > 0 && len(chunks) > *maxChunks {
		chunks = chunks[:*maxChunks]
		log.Info("Capped chunk list", zap.Int("max_chunks", *maxChunks))
	}

	// Content-generation provider.
	generator := newGenerator(ctx, cfg)

	// Optional Redis-backed reply cache.
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize Redis client", zap.Error(err))
		}
		cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
		keyScope := fmt.Sprintf("%s|%.2f", cfg.LLM.Model, cfg.LLM.Temperature)
		generator = service.NewCachingTextGenerator(generator, cacheAdapter, cfg.Cache.ReplyTTL, keyScope)
		log.Info("Generation reply cache enabled", zap.String("redis", cfg.Redis.Address))
	} else {
		log.Warn("Redis cache is not configured. Running without a reply cache.")
	}

	// Per-chunk topics and difficulties.
	topics := make([]string, len(chunks))
	difficulties := make([]string, len(chunks))
	for i := range chunks {
		topics[i] = *topic
		difficulties[i] = *difficulty
	}
	if *tagChunks {
		tagger := service.NewChunkTagger(generator)
		topics, difficulties = tagger.TagAll(ctx, chunks)
		log.Info("Tagged chunks", zap.Int("chunks", len(chunks)))
	}

	// Generate.
	orchestrator := service.NewGenerationOrchestrator(generator, cfg.Generation.BatchSize)
	records := orchestrator.GenerateBatch(ctx, chunks, topics, difficulties)

	// Keep only structurally valid records, logging what gets dropped.
	validator := service.NewSchemaValidator()
	valid := make([]*domain.QuizRecord, 0, len(records))
	for i, record := range records {
		result := validator.Validate(record)
		if result.IsValid {
			if len(result.Warnings) > 0 {
				log.Warn("Quiz has validation warnings",
					zap.Int("quiz", i+1),
					zap.Strings("warnings", result.Warnings))
			}
			valid = append(valid, record)
			continue
		}
		log.Warn("Dropping invalid quiz",
			zap.Int("quiz", i+1),
			zap.Strings("errors", result.Errors))
	}
	log.Info("Generated valid quizzes", zap.Int("valid", len(valid)), zap.Int("total", len(records)))

	if len(valid) == 0 {
		log.Fatal("No valid quizzes were generated")
	}

	// Summarize and export.
	aggregator := service.NewSummaryAggregator()
	summary := aggregator.Summarize(valid)
	log.Info("Quiz generation summary",
		zap.Int("total_quizzes", summary.TotalQuizzes),
		zap.Any("topics", summary.Topics),
		zap.Any("difficulties", summary.Difficulties),
		zap.Any("question_types", summary.QuestionTypes))

	manager := export.NewManager(aggregator)
	if err := manager.Export(valid, *format, cfg.Export.OutputDir); err != nil {
		log.Fatal("Export failed", zap.String("format", *format), zap.Error(err))
	}
	log.Info("Export complete", zap.String("output_dir", cfg.Export.OutputDir))
}

// newGenerator builds the configured provider adapter. Unsupported
// providers are rejected by config validation before this runs.
func newGenerator(ctx context.Context, cfg *config.Config) domain.TextGenerator {
	log := logger.Get()

	switch cfg.LLM.Provider {
	case "openai":
		gen, err := textgen.NewOpenAIGenerator(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.RequestTimeout)
		if err != nil {
			log.Fatal("Failed to initialize OpenAI generator", zap.Error(err))
		}
		return gen
	case "ollama":
		gen, err := textgen.NewOllamaGenerator(cfg.LLM.ServerURL, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.RequestTimeout)
		if err != nil {
			log.Fatal("Failed to initialize Ollama generator", zap.Error(err))
		}
		return gen
	case "gemini":
		gen, err := textgen.NewGeminiGenerator(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.RequestTimeout)
		if err != nil {
			log.Fatal("Failed to initialize Gemini generator", zap.Error(err))
		}
		return gen
	default:
		log.Fatal("Unsupported LLM provider", zap.String("provider", cfg.LLM.Provider))
		return nil
	}
}
