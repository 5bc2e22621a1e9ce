package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/cache"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/scripture"
	"go.uber.org/zap"
)

const tonePrompt = `You are Dr. Myles, a compassionate and wise spiritual leader.

Context: %s
Scripture: %s

Original:
"""%s"""

Rewrite this as Dr. Myles would say it. Be pastoral, encouraging, and incorporate the scripture naturally if provided.`

// ToneNormalizer rewrites a raw response into the platform's pastoral voice.
// It never returns an error: after the retry budget is spent it falls back to
// a deterministic template built from the raw response and scripture.
type ToneNormalizer struct {
	client    llm.Client
	cache     cache.Cache
	store     *scripture.Store
	ttl       time.Duration
	attempts  int
	baseDelay time.Duration
	logger    *zap.Logger
}

func NewToneNormalizer(client llm.Client, c cache.Cache, store *scripture.Store, ttl time.Duration, attempts int, baseDelay time.Duration, logger *zap.Logger) *ToneNormalizer {
	if attempts <= 0 {
		attempts = 3
	}
	return &ToneNormalizer{
		client:    client,
		cache:     c,
		store:     store,
		ttl:       ttl,
		attempts:  attempts,
		baseDelay: baseDelay,
		logger:    logger,
	}
}

func (n *ToneNormalizer) Normalize(ctx context.Context, rawResponse, msgContext, scriptureRef string) string {
	if scriptureRef == "" {
		scriptureRef = n.store.Random()
		n.logger.Info("Using random scripture for tone pass", zap.String("scripture", scriptureRef))
	}

	prompt := fmt.Sprintf(tonePrompt, msgContext, scriptureRef, rawResponse)
	key := cache.Key("tone", prompt)

	if cached, ok := n.cache.Get(key); ok {
		n.logger.Info("Using cached tone-normalized response")
		return cached
	}

	delay := n.baseDelay
	for attempt := 1; attempt <= n.attempts; attempt++ {
		polished, err := n.client.Complete(ctx, prompt, llm.Options{MaxTokens: 500})
		if err == nil {
			n.cache.Set(key, polished, n.ttl)
			return polished
		}

		n.logger.Error("Tone normalization attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", n.attempts))

		if attempt < n.attempts {
			time.Sleep(delay)
			delay *= 2
		}
	}

	fallback := fmt.Sprintf("Beloved, %s As the scripture says in %s, we must trust in the Lord with all our heart.", rawResponse, scriptureRef)
	n.logger.Warn("Tone normalization exhausted retries, using fallback")
	return fallback
}
