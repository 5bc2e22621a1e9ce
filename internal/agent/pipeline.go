package agent

import (
	"context"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/classifier"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/faq"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/scripture"
	"go.uber.org/zap"
)

const (
	escalationResponse = "I notice this may be a sensitive topic. While I'm here to support you spiritually, I recommend speaking with one of our pastoral staff for personalized guidance. Would you like me to have someone reach out to you?"
	escalationContext  = "Sensitive topic requiring human intervention"
	escalationVerse    = "Psalm 34:18 - The Lord is close to the brokenhearted and saves those who are crushed in spirit."

	prayerResponse = "Thank you for sharing your prayer request. I've forwarded this to our prayer ministry team, and they will be interceding for you. Would you also like to schedule a personal prayer session with one of our ministers?"
	prayerContext  = "Prayer request"

	faqContext = "FAQ inquiry"

	generalResponse = "Thank you for reaching out. Your message has been received by our ministry team."
	generalContext  = "General inquiry"

	defaultResponse = "Thank you for your message. Our ministry team will review it and respond appropriately."
	defaultContext  = "Default response"

	outageResponse = "Thank you for your message. Our system is experiencing some issues, but a team member will review your message soon."
)

// Pipeline sequences one inbound message through escalation detection,
// intent routing, tone normalization, and translation. The escalation check
// always runs first and an escalated message never reaches intent routing.
type Pipeline struct {
	escalation  *classifier.EscalationClassifier
	intents     *classifier.IntentClassifier
	prayer      *classifier.PrayerRouter
	faq         faq.Lookup
	enhancer    *FAQEnhancer
	tone        *ToneNormalizer
	translator  *Translator
	recommender *scripture.Recommender
	pivot       string
	logger      *zap.Logger
}

func NewPipeline(
	escalation *classifier.EscalationClassifier,
	intents *classifier.IntentClassifier,
	prayer *classifier.PrayerRouter,
	faqLookup faq.Lookup,
	enhancer *FAQEnhancer,
	tone *ToneNormalizer,
	translator *Translator,
	recommender *scripture.Recommender,
	pivotLanguage string,
	logger *zap.Logger,
) *Pipeline {
	if pivotLanguage == "" {
		pivotLanguage = "en"
	}
	return &Pipeline{
		escalation:  escalation,
		intents:     intents,
		prayer:      prayer,
		faq:         faqLookup,
		enhancer:    enhancer,
		tone:        tone,
		translator:  translator,
		recommender: recommender,
		pivot:       pivotLanguage,
		logger:      logger,
	}
}

// Process runs the full pipeline for one message. It always produces a
// result: component failures resolve to their local fallbacks, and the
// outer recover is the last line of defense for anything unexpected.
func (p *Pipeline) Process(ctx context.Context, msg models.Message) (result models.PipelineResult) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Pipeline panicked, returning outage response", zap.Any("panic", r))
			result = models.PipelineResult{
				Response: outageResponse,
				Language: msg.Language,
			}
		}
	}()

	text := msg.Text
	if msg.Language != p.pivot {
		text = p.translator.Translate(ctx, text, p.pivot)
	}

	// The escalation check runs before anything else touches the message.
	if p.escalation.Classify(ctx, text) {
		p.logger.Warn("Escalation required", zap.String("user_id", msg.UserID))
		polished := p.tone.Normalize(ctx, escalationResponse, escalationContext, escalationVerse)
		return models.PipelineResult{
			Response:  p.translateBack(ctx, polished, msg.Language),
			Escalated: true,
			Language:  msg.Language,
		}
	}

	intent := p.intents.Classify(text)
	p.logger.Info("Message classified",
		zap.String("intent", string(intent)),
		zap.String("source", string(msg.Source)))

	raw, msgContext, verse, faqMatched := p.handle(ctx, intent, text)

	polished := p.tone.Normalize(ctx, raw, msgContext, verse)
	return models.PipelineResult{
		Response:   p.translateBack(ctx, polished, msg.Language),
		FAQMatched: faqMatched,
		Language:   msg.Language,
	}
}

// handle dispatches to the intent handler and returns the raw response,
// context, scripture recommendation, and whether a FAQ entry matched.
func (p *Pipeline) handle(ctx context.Context, intent models.Intent, text string) (string, string, string, bool) {
	switch intent {
	case models.IntentPrayerRequest:
		return p.handlePrayer(ctx, text)
	case models.IntentFAQInquiry:
		return p.handleFAQ(ctx, text)
	case models.IntentGeneralInquiry:
		return p.handleGeneral(ctx, text)
	default:
		return defaultResponse, defaultContext, "", false
	}
}

func (p *Pipeline) handlePrayer(ctx context.Context, text string) (string, string, string, bool) {
	routing := p.prayer.Route(ctx, text)
	if !routing.IsPrayerRequest {
		// Routing disagreed with the keyword match; treat as a default
		// message rather than an error.
		return defaultResponse, defaultContext, "", false
	}
	return prayerResponse, prayerContext, p.recommender.Recommend(ctx, text), false
}

func (p *Pipeline) handleFAQ(ctx context.Context, text string) (string, string, string, bool) {
	answer, matched := p.faq.Answer(text)
	if !matched {
		return p.handleGeneral(ctx, text)
	}

	enhanced := p.enhancer.Enhance(ctx, answer, text)
	return enhanced, faqContext, p.recommender.Recommend(ctx, text), true
}

func (p *Pipeline) handleGeneral(ctx context.Context, text string) (string, string, string, bool) {
	return generalResponse, generalContext, p.recommender.Recommend(ctx, text), false
}

func (p *Pipeline) translateBack(ctx context.Context, text, language string) string {
	if language == p.pivot {
		return text
	}
	return p.translator.Translate(ctx, text, language)
}

// Translator exposes the pipeline's translator for the standalone translate
// endpoint.
func (p *Pipeline) Translator() *Translator {
	return p.translator
}

// PrayerRouter exposes prayer routing for the standalone prayer endpoint.
func (p *Pipeline) PrayerRouter() *classifier.PrayerRouter {
	return p.prayer
}

// FAQ exposes the lookup collaborator for the standalone FAQ endpoint.
func (p *Pipeline) FAQ() faq.Lookup {
	return p.faq
}

// PivotLanguage is the language all messages are normalized to internally.
func (p *Pipeline) PivotLanguage() string {
	return p.pivot
}
