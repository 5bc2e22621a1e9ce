package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/cache"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"go.uber.org/zap"
)

const escalationPrompt = `Analyze the following message and determine if it contains sensitive topics that require human intervention.
Sensitive topics include: suicidal thoughts, severe depression, abuse, violence, self-harm, or urgent medical needs.

Message: %s

Return only "ESCALATE" if this needs human attention, or "NORMAL" if it can be handled automatically.`

// escalationKeywords short-circuits classification before any network call.
// A match here can never be overridden by the model or the cache.
var escalationKeywords = []string{
	"suicidal", "suicide", "kill myself", "end my life",
	"self harm", "cut myself", "hurt myself",
	"abuse", "abused", "violence", "threat",
	"emergency", "crisis", "help me",
}

// escalationMarkers are the model answer substrings treated as an escalation
// verdict.
var escalationMarkers = []string{"ESCALATE", "URGENT", "CRISIS", "EMERGENCY"}

// EscalationClassifier decides whether a message needs human intervention.
// The failure direction is fixed: every error path resolves to escalate.
type EscalationClassifier struct {
	client llm.Client
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewEscalationClassifier(client llm.Client, c cache.Cache, ttl time.Duration, logger *zap.Logger) *EscalationClassifier {
	return &EscalationClassifier{
		client: client,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Classify returns true when the message must be routed to a human.
func (c *EscalationClassifier) Classify(ctx context.Context, text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range escalationKeywords {
		if strings.Contains(lower, keyword) {
			c.logger.Warn("Escalation keyword detected", zap.String("keyword", keyword))
			return true
		}
	}

	prompt := fmt.Sprintf(escalationPrompt, text)
	key := cache.Key("escalation", prompt)

	answer, ok := c.cache.Get(key)
	if !ok {
		var err error
		answer, err = c.client.Complete(ctx, prompt, llm.Options{Temperature: 0.1, MaxTokens: 10})
		if err != nil {
			c.logger.Error("Escalation detection failed, defaulting to escalate", zap.Error(err))
			return true
		}
		c.cache.Set(key, answer, c.ttl)
	}

	upper := strings.ToUpper(answer)
	for _, marker := range escalationMarkers {
		if strings.Contains(upper, marker) {
			c.logger.Warn("Escalation detected by model",
				zap.String("answer", answer))
			return true
		}
	}

	return false
}
