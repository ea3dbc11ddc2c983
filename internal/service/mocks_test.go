package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package.
func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Env: "development", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// MockTextGenerator is a testify mock for the domain.TextGenerator port.
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	args := m.Called(ctx, systemInstruction, userPrompt)
	return args.String(0), args.Error(1)
}

// memoryCache is an in-memory domain.Cache for exercising the reply cache
// without a Redis server.
type memoryCache struct {
	mu    sync.Mutex
	items map[string]string
	sets  int
	gets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return "", domain.ErrCacheMiss
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }
