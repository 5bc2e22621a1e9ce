package faq

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Lookup answers a question from the FAQ knowledge base, or reports no match.
type Lookup interface {
	Answer(question string) (string, bool)
}

// Entry is one question/answer pair from faqs.json.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StaticLookup scores questions by normalized token overlap against the
// loaded entries. It stands in for the external vector-similarity service
// behind the same lookup(question) -> answer|none contract.
type StaticLookup struct {
	entries   []Entry
	threshold float64
	logger    *zap.Logger
}

func NewStaticLookup(path string, threshold float64, logger *zap.Logger) *StaticLookup {
	entries := loadEntries(path, logger)
	if threshold <= 0 {
		threshold = 0.6
	}
	return &StaticLookup{
		entries:   entries,
		threshold: threshold,
		logger:    logger,
	}
}

func loadEntries(path string, logger *zap.Logger) []Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read FAQ file", zap.Error(err), zap.String("path", path))
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("Failed to parse FAQ file", zap.Error(err), zap.String("path", path))
		return nil
	}

	logger.Info("Loaded FAQ entries", zap.Int("count", len(entries)))
	return entries
}

func (l *StaticLookup) Answer(question string) (string, bool) {
	queryTokens := tokenize(question)
	if len(queryTokens) == 0 {
		return "", false
	}

	bestScore := 0.0
	bestAnswer := ""
	for _, entry := range l.entries {
		score := overlap(queryTokens, tokenize(entry.Question))
		if score > bestScore {
			bestScore = score
			bestAnswer = entry.Answer
		}
	}

	if bestScore < l.threshold {
		return "", false
	}
	return bestAnswer, true
}

// stopwords excluded from scoring so question scaffolding does not match.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "do": {}, "does": {},
	"what": {}, "when": {}, "where": {}, "how": {}, "why": {}, "can": {},
	"you": {}, "i": {}, "to": {}, "of": {}, "for": {}, "in": {}, "on": {},
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'")
		if word == "" {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}

// overlap is the fraction of query tokens present in the entry question.
func overlap(query, entry map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	matched := 0
	for token := range query {
		if _, ok := entry[token]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(query))
}
