package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/scripture"
)

type fakeModel struct {
	response string
	err      error
	calls    int
	// respond overrides response/err when set
	respond func(prompt string) (string, error)
}

func (f *fakeModel) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	f.calls++
	if f.respond != nil {
		return f.respond(prompt)
	}
	return f.response, f.err
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(key string) (string, bool) {
	v, ok := f.entries[key]
	return v, ok
}

func (f *fakeCache) Set(key string, value string, ttl time.Duration) {
	f.entries[key] = value
}

func newTestStore(t *testing.T) *scripture.Store {
	t.Helper()
	return scripture.NewStore("does/not/exist.json", zap.NewNop())
}

func TestToneNormalizer_IdempotentUnderCacheHit(t *testing.T) {
	model := &fakeModel{response: "Beloved, peace be with you."}
	normalizer := NewToneNormalizer(model, newFakeCache(), newTestStore(t), time.Hour, 3, 0, zap.NewNop())

	first := normalizer.Normalize(context.Background(), "raw text", "General inquiry", "Psalm 23:1 - The Lord is my shepherd.")
	second := normalizer.Normalize(context.Background(), "raw text", "General inquiry", "Psalm 23:1 - The Lord is my shepherd.")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, model.calls, "identical inputs trigger at most one model call")
}

func TestToneNormalizer_FallbackAfterRetries(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	normalizer := NewToneNormalizer(model, newFakeCache(), newTestStore(t), time.Hour, 3, 0, zap.NewNop())

	got := normalizer.Normalize(context.Background(), "your message was received", "General inquiry", "Psalm 23:1 - The Lord is my shepherd.")

	assert.Equal(t, 3, model.calls, "three attempts before fallback")
	assert.Contains(t, got, "your message was received", "fallback interpolates the raw response")
	assert.Contains(t, got, "Psalm 23:1", "fallback interpolates the scripture")
}

func TestToneNormalizer_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	model := &fakeModel{respond: func(prompt string) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient")
		}
		return "Beloved, all is well.", nil
	}}
	normalizer := NewToneNormalizer(model, newFakeCache(), newTestStore(t), time.Hour, 3, 0, zap.NewNop())

	got := normalizer.Normalize(context.Background(), "raw", "ctx", "verse")
	assert.Equal(t, "Beloved, all is well.", got)
	assert.Equal(t, 3, attempts)
}

func TestToneNormalizer_EmptyScriptureUsesStoreVerse(t *testing.T) {
	var seenPrompt string
	model := &fakeModel{respond: func(prompt string) (string, error) {
		seenPrompt = prompt
		return "polished", nil
	}}
	normalizer := NewToneNormalizer(model, newFakeCache(), newTestStore(t), time.Hour, 3, 0, zap.NewNop())

	normalizer.Normalize(context.Background(), "raw", "ctx", "")
	assert.Contains(t, seenPrompt, " - ", "a store verse is substituted when none is provided")
}
