package agent

import (
	"context"
	"fmt"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/llm"
	"go.uber.org/zap"
)

const translatePrompt = `Translate this ministry message to %s.
Maintain pastoral tone and spiritual context. Return only the translated text.

Message: %s`

// Translator converts text between languages via the model. Translation is
// fail-open: any failure returns the input unchanged so a translation outage
// never blocks message delivery.
type Translator struct {
	client llm.Client
	logger *zap.Logger
}

func NewTranslator(client llm.Client, logger *zap.Logger) *Translator {
	return &Translator{
		client: client,
		logger: logger,
	}
}

func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) string {
	translated, err := t.client.Complete(ctx, fmt.Sprintf(translatePrompt, targetLanguage, text), llm.Options{})
	if err != nil {
		t.logger.Error("Translation failed, returning original text",
			zap.Error(err),
			zap.String("target_language", targetLanguage))
		return text
	}
	return translated
}
