package donation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/scripture"
	"go.uber.org/zap"
)

const (
	thankYouPrompt = `You are a grateful ministry leader writing personalized thank-you notes.
Express genuine gratitude, mention the impact the gift will have, and weave in one of these verses naturally:
%s

Write a complete thank-you message for %s who donated %s.`

	impactStoryPrompt = `You are a ministry storyteller who shares compelling impact narratives.
Transform this impact data into a short, engaging story that shows tangible results from donor support:
%s`

	recurringPrompt = `You are a gentle stewardship counselor promoting recurring giving.
Write an encouraging message about recurring donations for %s. Emphasize the sustained impact of consistent support, include relevant scripture about faithfulness, and never pressure - always encourage with grace.`

	questionPrompt = `You are a knowledgeable ministry administrator answering donation questions.
Cover tax deductibility, donation methods, recurring giving, and fund transparency accurately.
If you don't know specific policy details, direct the donor to contact the ministry office.

Question: %s`
)

// ImpactStory is one entry from impact_stories.json.
type ImpactStory struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service generates donor-facing communications. Every operation has a fixed
// fallback so a model outage still yields a usable message.
type Service struct {
	client  llm.Client
	store   *scripture.Store
	stories []ImpactStory
	logger  *zap.Logger
}

func NewService(client llm.Client, store *scripture.Store, storiesPath string, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		store:   store,
		stories: loadStories(storiesPath, logger),
		logger:  logger,
	}
}

func loadStories(path string, logger *zap.Logger) []ImpactStory {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read impact stories", zap.Error(err), zap.String("path", path))
		return nil
	}

	var stories []ImpactStory
	if err := json.Unmarshal(data, &stories); err != nil {
		logger.Error("Failed to parse impact stories", zap.Error(err), zap.String("path", path))
		return nil
	}

	logger.Info("Loaded impact stories", zap.Int("count", len(stories)))
	return stories
}

func (s *Service) ThankYou(ctx context.Context, donorName, amount string) string {
	verses := s.store.GivingVerses()
	var lines []string
	for _, v := range verses {
		lines = append(lines, v.Reference+" - "+v.Text)
	}

	prompt := fmt.Sprintf(thankYouPrompt, strings.Join(lines, "\n"), donorName, amount)
	message, err := s.client.Complete(ctx, prompt, llm.Options{MaxTokens: 400})
	if err != nil {
		s.logger.Error("Thank you generation failed", zap.Error(err))
		return fmt.Sprintf("Thank you %s for your generous gift of %s!", donorName, amount)
	}
	return message
}

func (s *Service) ImpactStoryFor(ctx context.Context, category string) string {
	stories := s.stories
	if category != "" {
		var filtered []ImpactStory
		for _, story := range stories {
			if story.Category == category {
				filtered = append(filtered, story)
			}
		}
		if len(filtered) > 0 {
			stories = filtered
		}
	}

	if len(stories) > 2 {
		stories = stories[:2]
	}

	source, err := json.Marshal(stories)
	if err != nil {
		source = []byte("[]")
	}

	story, err := s.client.Complete(ctx, fmt.Sprintf(impactStoryPrompt, source), llm.Options{MaxTokens: 400})
	if err != nil {
		s.logger.Error("Impact story generation failed", zap.Error(err))
		return "Your donations are making a real difference in our community!"
	}
	return story
}

func (s *Service) RecurringGiving(ctx context.Context, donorName string) string {
	if donorName == "" {
		donorName = "supporter"
	}

	message, err := s.client.Complete(ctx, fmt.Sprintf(recurringPrompt, donorName), llm.Options{MaxTokens: 400})
	if err != nil {
		s.logger.Error("Recurring giving promotion failed", zap.Error(err))
		return "Consider setting up recurring giving to support our ongoing ministry!"
	}
	return message
}

func (s *Service) AnswerQuestion(ctx context.Context, question string) string {
	answer, err := s.client.Complete(ctx, fmt.Sprintf(questionPrompt, question), llm.Options{MaxTokens: 400})
	if err != nil {
		s.logger.Error("Donation question answering failed", zap.Error(err))
		return "Please contact our ministry office for donation questions."
	}
	return answer
}
