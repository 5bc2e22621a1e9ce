package classifier

import (
	"strings"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
)

// intentRule maps a keyword group to the intent it selects. Rules are
// evaluated in order; the first group with any match wins.
type intentRule struct {
	intent   models.Intent
	keywords []string
}

var intentRules = []intentRule{
	{
		intent:   models.IntentPrayerRequest,
		keywords: []string{"pray", "prayer", "praying", "intercede", "blessing", "heal", "healing"},
	},
	{
		intent:   models.IntentFAQInquiry,
		keywords: []string{"how", "what", "when", "where", "why", "can you", "do you", "information"},
	},
	{
		intent:   models.IntentGeneralInquiry,
		keywords: []string{"help", "support", "guidance", "question", "need"},
	},
}

// IntentClassifier assigns a message to one of the fixed intents. It is a
// pure function of the text: no state, no I/O.
type IntentClassifier struct{}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

func (c *IntentClassifier) Classify(text string) models.Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return models.IntentDefault
}
