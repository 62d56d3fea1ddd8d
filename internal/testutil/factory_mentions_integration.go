//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/mentionscope/mentions-worker/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор обогащённого упоминания
func MakeMention(opts ...func(*domain.EnrichedMention)) domain.EnrichedMention {
	suffix := UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	m := domain.EnrichedMention{
		Article: domain.ArticleRecord{
			Title:         "Acme Corp ships new product " + suffix,
			Description:   "Acme Corp announced the general availability of its new product line today.",
			Source:        map[string]any{"name": "Example News"},
			Author:        "Jane Reporter",
			URL:           "https://news.example.com/acme-" + suffix,
			ImageURL:      "https://news.example.com/img/" + suffix + ".jpg",
			PublishedAt:   now.Format(time.RFC3339),
			Content:       "Full article body for " + suffix,
			SearchKeyword: "Acme Corp",
		},
		Sentiment: domain.SentimentResult{
			Label: domain.SentimentPositive,
			Score: 0.91,
		},
		Raw: map[string]any{
			"title": "Acme Corp ships new product " + suffix,
		},
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// WithSentiment — переопределить результат классификации.
func WithSentiment(label string, score float64) func(*domain.EnrichedMention) {
	return func(m *domain.EnrichedMention) {
		m.Sentiment = domain.SentimentResult{Label: label, Score: score}
	}
}
