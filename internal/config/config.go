package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config is the full configuration surface, static at process start.
type Config struct {
	LLM        LLMConfig
	Chunking   ChunkingConfig
	Generation GenerationConfig
	Source     SourceConfig
	Export     ExportConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Logger     LoggerConfig
}

// LLMConfig selects and parameterizes the content-generation provider.
type LLMConfig struct {
	Provider       string // "openai", "ollama" or "gemini"
	Model          string
	Temperature    float64
	APIKey         string
	ServerURL      string // ollama only
	RequestTimeout time.Duration
}

type ChunkingConfig struct {
	Size    int
	Overlap int
}

type GenerationConfig struct {
	Topics       []string
	Difficulties []string
	// BatchSize bounds the generation worker pool; 1 or less means the
	// plain sequential loop.
	BatchSize int
}

type SourceConfig struct {
	MaxFileSizeMB int
}

type ExportConfig struct {
	OutputDir string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	// ReplyTTL bounds how long generated replies stay cached.
	ReplyTTL time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

func setDefaults() {
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-3.5-turbo")
	viper.SetDefault("llm.temperature", 0.3)
	viper.SetDefault("llm.request_timeout", "30s")
	viper.SetDefault("chunking.size", 750)
	viper.SetDefault("chunking.overlap", 100)
	viper.SetDefault("generation.topics", []string{
		"GMP", "Device Classification", "Clinical Trials", "Licensing",
		"Quality Assurance", "General", "Documentation",
		"Risk Management", "Validation", "Audit",
	})
	viper.SetDefault("generation.difficulties", []string{"Beginner", "Intermediate", "Expert"})
	viper.SetDefault("generation.batch_size", 5)
	viper.SetDefault("source.max_file_size_mb", 50)
	viper.SetDefault("export.output_dir", "quiz_exports")
	viper.SetDefault("cache.reply_ttl", "24h")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
}

// LoadConfig reads config.yaml (working directory or ./configs), applies
// defaults for anything unset, and lets environment variables override the
// sensitive fields. A missing config file is not an error; every key has a
// usable default.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		LLM: LLMConfig{
			Provider:       viper.GetString("llm.provider"),
			Model:          viper.GetString("llm.model"),
			Temperature:    viper.GetFloat64("llm.temperature"),
			APIKey:         viper.GetString("llm.api_key"),
			ServerURL:      viper.GetString("llm.server_url"),
			RequestTimeout: viper.GetDuration("llm.request_timeout"),
		},
		Chunking: ChunkingConfig{
			Size:    viper.GetInt("chunking.size"),
			Overlap: viper.GetInt("chunking.overlap"),
		},
		Generation: GenerationConfig{
			Topics:       viper.GetStringSlice("generation.topics"),
			Difficulties: viper.GetStringSlice("generation.difficulties"),
			BatchSize:    viper.GetInt("generation.batch_size"),
		},
		Source: SourceConfig{
			MaxFileSizeMB: viper.GetInt("source.max_file_size_mb"),
		},
		Export: ExportConfig{
			OutputDir: viper.GetString("export.output_dir"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			ReplyTTL: viper.GetDuration("cache.reply_ttl"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && config.LLM.Provider == "openai" {
		config.LLM.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && config.LLM.Provider == "gemini" {
		config.LLM.APIKey = key
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if serverURL := os.Getenv("LLM_SERVER_URL"); serverURL != "" {
		config.LLM.ServerURL = serverURL
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if outputDir := os.Getenv("OUTPUT_DIR"); outputDir != "" {
		config.Export.OutputDir = outputDir
	}
	if size := os.Getenv("CHUNK_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			config.Chunking.Size = n
		}
	}
	if overlap := os.Getenv("CHUNK_OVERLAP"); overlap != "" {
		if n, err := strconv.Atoi(overlap); err == nil {
			config.Chunking.Overlap = n
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openai", "ollama", "gemini":
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.Chunking.Size <= 0 {
		return fmt.Errorf("chunking.size must be positive, got %d", c.Chunking.Size)
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.Size {
		return fmt.Errorf("chunking.overlap must be in [0, %d), got %d", c.Chunking.Size, c.Chunking.Overlap)
	}
	if c.Generation.BatchSize < 0 {
		return fmt.Errorf("generation.batch_size must not be negative, got %d", c.Generation.BatchSize)
	}
	if c.Source.MaxFileSizeMB <= 0 {
		return fmt.Errorf("source.max_file_size_mb must be positive, got %d", c.Source.MaxFileSizeMB)
	}
	return nil
}

// CacheEnabled reports whether a Redis-backed reply cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Address != ""
}
