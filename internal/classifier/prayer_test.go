package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPrayerRouter_Route(t *testing.T) {
	t.Run("prayer request", func(t *testing.T) {
		model := &fakeModel{response: "PRAYER_REQUEST - route to intercession team"}
		r := NewPrayerRouter(model, zap.NewNop())

		routing := r.Route(context.Background(), "please pray for my family")
		assert.True(t, routing.IsPrayerRequest)
		assert.False(t, routing.NeedsDeliverance)
		assert.False(t, routing.IsUrgent)
		assert.Contains(t, routing.Suggestion, "intercession")
	})

	t.Run("urgent spiritual", func(t *testing.T) {
		model := &fakeModel{response: "URGENT_SPIRITUAL"}
		r := NewPrayerRouter(model, zap.NewNop())

		routing := r.Route(context.Background(), "I need prayer right now")
		assert.True(t, routing.IsUrgent)
	})

	t.Run("not prayer", func(t *testing.T) {
		model := &fakeModel{response: "NOT_PRAYER"}
		r := NewPrayerRouter(model, zap.NewNop())

		routing := r.Route(context.Background(), "what time is the service")
		assert.False(t, routing.IsPrayerRequest)
		assert.False(t, routing.IsUrgent)
	})

	t.Run("model failure falls back to general team", func(t *testing.T) {
		model := &fakeModel{err: errors.New("timeout")}
		r := NewPrayerRouter(model, zap.NewNop())

		routing := r.Route(context.Background(), "please pray for me")
		assert.False(t, routing.IsPrayerRequest)
		assert.False(t, routing.IsUrgent)
		assert.Equal(t, "Route to general ministry team", routing.Suggestion)
	})
}
