package analytics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
)

func TestMemorySink_Record(t *testing.T) {
	sink := NewMemorySink()

	err := sink.Record(models.Interaction{
		ID:          "i1",
		UserID:      "u1",
		MessageType: "website",
		Escalated:   true,
	})
	require.NoError(t, err)

	got := sink.Interactions()
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].UserID)
	assert.True(t, got[0].Escalated)
	assert.False(t, got[0].CreatedAt.IsZero(), "created_at is stamped when missing")
}

func TestMemorySink_ConcurrentRecords(t *testing.T) {
	sink := NewMemorySink()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sink.Record(models.Interaction{UserID: "u"})
		}()
	}
	wg.Wait()

	assert.Len(t, sink.Interactions(), 50)
}
