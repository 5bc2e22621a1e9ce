package donation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/scripture"
)

type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeModel) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func newTestService(t *testing.T, model llm.Client, stories string) *Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "impact_stories.json")
	if stories == "" {
		stories = "[]"
	}
	require.NoError(t, os.WriteFile(path, []byte(stories), 0o644))

	store := scripture.NewStore("does/not/exist.json", zap.NewNop())
	return NewService(model, store, path, zap.NewNop())
}

func TestService_ThankYou(t *testing.T) {
	model := &fakeModel{response: "Dear Sarah, thank you for your gift."}
	s := newTestService(t, model, "")

	got := s.ThankYou(context.Background(), "Sarah", "$100")
	assert.Equal(t, "Dear Sarah, thank you for your gift.", got)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Sarah")
	assert.Contains(t, model.prompts[0], "$100")
}

func TestService_ThankYouFallback(t *testing.T) {
	model := &fakeModel{err: errors.New("timeout")}
	s := newTestService(t, model, "")

	got := s.ThankYou(context.Background(), "Sarah", "$100")
	assert.Equal(t, "Thank you Sarah for your generous gift of $100!", got)
}

func TestService_ImpactStoryCategoryFilter(t *testing.T) {
	stories := `[
		{"category":"outreach","title":"Food Pantry","description":"Fed 340 families."},
		{"category":"missions","title":"Wells","description":"Two new wells."}
	]`
	model := &fakeModel{response: "A story of wells."}
	s := newTestService(t, model, stories)

	got := s.ImpactStoryFor(context.Background(), "missions")
	assert.Equal(t, "A story of wells.", got)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Wells")
	assert.NotContains(t, model.prompts[0], "Food Pantry")
}

func TestService_ImpactStoryUnknownCategoryUsesAll(t *testing.T) {
	stories := `[{"category":"outreach","title":"Food Pantry","description":"Fed 340 families."}]`
	model := &fakeModel{response: "A story."}
	s := newTestService(t, model, stories)

	s.ImpactStoryFor(context.Background(), "no-such-category")
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Food Pantry")
}

func TestService_ImpactStoryFallback(t *testing.T) {
	model := &fakeModel{err: errors.New("timeout")}
	s := newTestService(t, model, "")

	got := s.ImpactStoryFor(context.Background(), "")
	assert.Contains(t, got, "making a real difference")
}

func TestService_RecurringGivingFallback(t *testing.T) {
	model := &fakeModel{err: errors.New("timeout")}
	s := newTestService(t, model, "")

	got := s.RecurringGiving(context.Background(), "")
	assert.Contains(t, got, "recurring giving")
}

func TestService_RecurringGivingDefaultsDonorName(t *testing.T) {
	model := &fakeModel{response: "ok"}
	s := newTestService(t, model, "")

	s.RecurringGiving(context.Background(), "")
	require.Len(t, model.prompts, 1)
	assert.True(t, strings.Contains(model.prompts[0], "supporter"))
}

func TestService_AnswerQuestionFallback(t *testing.T) {
	model := &fakeModel{err: errors.New("timeout")}
	s := newTestService(t, model, "")

	got := s.AnswerQuestion(context.Background(), "Is my donation tax deductible?")
	assert.Contains(t, got, "ministry office")
}
