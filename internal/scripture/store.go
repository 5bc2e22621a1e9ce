package scripture

import (
	"encoding/json"
	"math/rand"
	"os"
	"strings"

	"github.com/Sage-Nwanne/Ministry-Ai-Hub/internal/models"
	"go.uber.org/zap"
)

// defaultVerses keeps the store usable when verses.json is missing or
// malformed. The store is never empty.
var defaultVerses = []models.ScriptureReference{
	{
		Reference: "Proverbs 3:5-6",
		Text:      "Trust in the Lord with all your heart, and do not lean on your own understanding. In all your ways acknowledge him, and he will make straight your paths.",
	},
	{
		Reference: "Psalm 23:1",
		Text:      "The Lord is my shepherd; I shall not want.",
	},
	{
		Reference: "Isaiah 41:10",
		Text:      "Fear not, for I am with you; be not dismayed, for I am your God.",
	},
}

var givingTopics = []string{"give", "generous", "cheerful", "blessing"}

// Store holds the read-only verse collection loaded at process start.
// Concurrent reads are safe because the slice is never mutated after New.
type Store struct {
	verses []models.ScriptureReference
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		verses: loadVerses(path, logger),
		logger: logger,
	}
}

func loadVerses(path string, logger *zap.Logger) []models.ScriptureReference {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read verses file, using defaults",
			zap.Error(err),
			zap.String("path", path))
		return defaultVerses
	}

	var verses []models.ScriptureReference
	if err := json.Unmarshal(data, &verses); err != nil {
		logger.Error("Failed to parse verses file, using defaults",
			zap.Error(err),
			zap.String("path", path))
		return defaultVerses
	}

	if len(verses) == 0 {
		logger.Warn("Verses file is empty, using defaults", zap.String("path", path))
		return defaultVerses
	}

	logger.Info("Loaded verses", zap.Int("count", len(verses)))
	return verses
}

// Random returns one verse chosen uniformly at random, formatted as
// "reference - text".
func (s *Store) Random() string {
	v := s.verses[rand.Intn(len(s.verses))]
	return v.Reference + " - " + v.Text
}

// GivingVerses returns up to five verses whose text touches on giving and
// generosity, for use in donation prompts.
func (s *Store) GivingVerses() []models.ScriptureReference {
	var giving []models.ScriptureReference
	for _, v := range s.verses {
		text := strings.ToLower(v.Text)
		for _, topic := range givingTopics {
			if strings.Contains(text, topic) {
				giving = append(giving, v)
				break
			}
		}
		if len(giving) == 5 {
			break
		}
	}
	return giving
}

func (s *Store) Len() int {
	return len(s.verses)
}
