package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/cache"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"go.uber.org/zap"
)

const enhancePrompt = `User Question: %s
FAQ Answer: %s

Enhance this FAQ answer to be more pastoral and helpful while keeping the core information accurate.`

// FAQEnhancer warms a stored FAQ answer into a personal, pastoral reply.
// Fail-open: the raw answer is returned when enhancement is unavailable.
type FAQEnhancer struct {
	client llm.Client
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewFAQEnhancer(client llm.Client, c cache.Cache, ttl time.Duration, logger *zap.Logger) *FAQEnhancer {
	return &FAQEnhancer{
		client: client,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func (e *FAQEnhancer) Enhance(ctx context.Context, answer, question string) string {
	prompt := fmt.Sprintf(enhancePrompt, question, answer)
	key := cache.Key("faq_enhanced", prompt)

	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	enhanced, err := e.client.Complete(ctx, prompt, llm.Options{})
	if err != nil {
		e.logger.Error("FAQ enhancement failed, returning stored answer", zap.Error(err))
		return answer
	}

	e.cache.Set(key, enhanced, e.ttl)
	return enhanced
}
