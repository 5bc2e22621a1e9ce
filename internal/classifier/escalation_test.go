package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
)

type fakeModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeModel) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	f.calls++
	return f.response, f.err
}

type fakeCache struct {
	entries map[string]string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(key string) (string, bool) {
	v, ok := f.entries[key]
	return v, ok
}

func (f *fakeCache) Set(key string, value string, ttl time.Duration) {
	f.sets++
	f.entries[key] = value
}

func TestEscalationClassifier_KeywordPreFilter(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"suicidal ideation", "I want to kill myself"},
		{"suicide term", "I have been thinking about suicide"},
		{"self harm", "sometimes I cut myself"},
		{"abuse", "my partner abused me again"},
		{"crisis", "this is a crisis, please"},
		{"uppercase keyword", "I FEEL SUICIDAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The model always answers NORMAL; the keyword filter must win
			// without the model ever being called.
			model := &fakeModel{response: "NORMAL"}
			c := NewEscalationClassifier(model, newFakeCache(), time.Hour, zap.NewNop())

			assert.True(t, c.Classify(context.Background(), tt.text))
			assert.Zero(t, model.calls, "keyword match must short-circuit before any model call")
		})
	}
}

func TestEscalationClassifier_FailSafeOnModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	c := NewEscalationClassifier(model, newFakeCache(), time.Hour, zap.NewNop())

	assert.True(t, c.Classify(context.Background(), "I have a question about parking"))
}

func TestEscalationClassifier_ModelVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"normal", "NORMAL", false},
		{"escalate", "ESCALATE", true},
		{"escalate in sentence", "I believe this should ESCALATE to a human.", true},
		{"urgent marker", "urgent", true},
		{"crisis marker", "This is a Crisis situation", true},
		{"emergency marker", "EMERGENCY", true},
		{"unrelated text", "all is well here", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{response: tt.response}
			c := NewEscalationClassifier(model, newFakeCache(), time.Hour, zap.NewNop())

			got := c.Classify(context.Background(), "a calm message about the weather")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEscalationClassifier_CachesModelAnswer(t *testing.T) {
	model := &fakeModel{response: "NORMAL"}
	store := newFakeCache()
	c := NewEscalationClassifier(model, store, time.Hour, zap.NewNop())

	text := "a calm message about the weather"
	assert.False(t, c.Classify(context.Background(), text))
	assert.False(t, c.Classify(context.Background(), text))
	assert.Equal(t, 1, model.calls, "second identical message should hit the cache")
}

func TestEscalationClassifier_KeywordNeverCachedOut(t *testing.T) {
	// Even a cached NORMAL verdict cannot override the keyword filter.
	model := &fakeModel{response: "NORMAL"}
	store := newFakeCache()
	c := NewEscalationClassifier(model, store, time.Hour, zap.NewNop())

	assert.True(t, c.Classify(context.Background(), "I want to end my life"))
	assert.True(t, c.Classify(context.Background(), "I want to end my life"))
	assert.Zero(t, model.calls)
	assert.Zero(t, store.sets)
}
