package scripture

import (
	"context"
	"fmt"
	"time"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/cache"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"go.uber.org/zap"
)

const recommendPrompt = `Based on the following message, suggest an appropriate scripture verse that would provide comfort, guidance, or wisdom.
Keep your response brief - just the scripture reference and verse.

Message: %s`

// Recommender produces a content-aware verse suggestion for a message,
// falling back to a random verse from the store on any failure.
type Recommender struct {
	store  *Store
	client llm.Client
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewRecommender(store *Store, client llm.Client, c cache.Cache, ttl time.Duration, logger *zap.Logger) *Recommender {
	return &Recommender{
		store:  store,
		client: client,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *Recommender) Recommend(ctx context.Context, messageText string) string {
	prompt := fmt.Sprintf(recommendPrompt, messageText)
	key := cache.Key("scripture", prompt)

	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	verse, err := r.client.Complete(ctx, prompt, llm.Options{MaxTokens: 100})
	if err != nil {
		r.logger.Error("Scripture recommendation failed, using random verse", zap.Error(err))
		return r.store.Random()
	}

	r.cache.Set(key, verse, r.ttl)
	return verse
}
