package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"quizforge/internal/cache"
	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachingTextGenerator decorates a TextGenerator with a reply cache. The
// chunker is deterministic, so identical prompts against the same model and
// temperature settings yield the same cache key, which makes re-runs over
// the same document nearly free. Concurrent identical misses from the batch
// pool are deduplicated with singleflight. A nil cache degrades to
// pass-through.
type CachingTextGenerator struct {
	inner    domain.TextGenerator
	cache    domain.Cache
	ttl      time.Duration
	keyScope string
	sfGroup  singleflight.Group
}

var _ domain.TextGenerator = (*CachingTextGenerator)(nil)

// NewCachingTextGenerator wraps inner with a reply cache. keyScope should
// name the model and temperature so replies from different configurations
// never collide.
func NewCachingTextGenerator(inner domain.TextGenerator, c domain.Cache, ttl time.Duration, keyScope string) *CachingTextGenerator {
	return &CachingTextGenerator{
		inner:    inner,
		cache:    c,
		ttl:      ttl,
		keyScope: keyScope,
	}
}

// GenerateText returns the cached reply when present, otherwise calls the
// inner generator and caches its reply. Cache failures are logged and never
// fail the generation.
func (g *CachingTextGenerator) GenerateText(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	if g.cache == nil {
		return g.inner.GenerateText(ctx, systemInstruction, userPrompt)
	}

	promptHash := hashString(g.keyScope + "|" + systemInstruction + "|" + userPrompt)
	cacheKey := cache.GenerateCacheKey("generation", "reply", promptHash)

	cached, err := g.cache.Get(ctx, cacheKey)
	if err == nil {
		logger.Get().Debug("Generation reply cache hit", zap.String("key", cacheKey))
		return cached, nil
	}
	if err != domain.ErrCacheMiss {
		logger.Get().Warn("Generation reply cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}

	res, err, _ := g.sfGroup.Do(cacheKey, func() (interface{}, error) {
		reply, genErr := g.inner.GenerateText(ctx, systemInstruction, userPrompt)
		if genErr != nil {
			return "", genErr
		}
		if setErr := g.cache.Set(ctx, cacheKey, reply, g.ttl); setErr != nil {
			logger.Get().Warn("Failed to cache generation reply", zap.String("key", cacheKey), zap.Error(setErr))
		}
		return reply, nil
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
