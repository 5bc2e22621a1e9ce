package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
	"go.uber.org/zap"
)

const prayerRoutingPrompt = `You are a prayer ministry coordinator. Analyze the message below and identify:

1. Prayer requests (personal, family, health, spiritual)
2. Deliverance needs (spiritual warfare, bondage, oppression)
3. Urgent spiritual emergencies

Respond with:
- 'PRAYER_REQUEST' for general prayer needs
- 'DELIVERANCE_NEEDED' for spiritual warfare/deliverance
- 'URGENT_SPIRITUAL' for immediate spiritual emergencies
- 'NOT_PRAYER' for non-prayer related messages

Also suggest appropriate ministry team routing.

Message: %s`

const fallbackRoutingSuggestion = "Route to general ministry team"

// PrayerRouter classifies prayer requests for ministry team routing. On any
// model failure it returns the general-team fallback rather than an error.
type PrayerRouter struct {
	client llm.Client
	logger *zap.Logger
}

func NewPrayerRouter(client llm.Client, logger *zap.Logger) *PrayerRouter {
	return &PrayerRouter{
		client: client,
		logger: logger,
	}
}

func (r *PrayerRouter) Route(ctx context.Context, text string) models.PrayerRouting {
	answer, err := r.client.Complete(ctx, fmt.Sprintf(prayerRoutingPrompt, text), llm.Options{Temperature: 0.1})
	if err != nil {
		r.logger.Error("Prayer routing failed, using general team fallback", zap.Error(err))
		return models.PrayerRouting{Suggestion: fallbackRoutingSuggestion}
	}

	upper := strings.ToUpper(answer)
	return models.PrayerRouting{
		IsPrayerRequest:  strings.Contains(upper, "PRAYER_REQUEST"),
		NeedsDeliverance: strings.Contains(upper, "DELIVERANCE_NEEDED"),
		IsUrgent:         strings.Contains(upper, "URGENT_SPIRITUAL"),
		Suggestion:       answer,
	}
}
