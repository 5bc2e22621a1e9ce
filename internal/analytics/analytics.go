package analytics

import (
	"sync"
	"time"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
)

// Sink records interaction events. Recording is fire-and-forget: callers
// dispatch after the response is committed and never observe failures.
type Sink interface {
	Record(interaction models.Interaction) error
	Close() error
}

// MemorySink keeps interactions in memory, for local runs and tests.
type MemorySink struct {
	mu           sync.RWMutex
	interactions []models.Interaction
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(interaction models.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now()
	}
	s.interactions = append(s.interactions, interaction)
	return nil
}

// Interactions returns a copy of everything recorded so far.
func (s *MemorySink) Interactions() []models.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Interaction, len(s.interactions))
	copy(out, s.interactions)
	return out
}

func (s *MemorySink) Close() error {
	return nil
}
