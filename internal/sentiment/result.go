package sentiment

import (
	"encoding/json"
	"strings"

	"github.com/mentionscope/mentions-worker/internal/domain"
)

// Normalize — приводит сырую пару (label, score) от провайдера к инварианту
// модели данных: метка вне {POSITIVE, NEGATIVE, NEUTRAL} заменяется на UNKNOWN,
// оценка вне [0, 1] или нечислового типа — на 0.0. Семантически битый ответ
// исправляется по полям, а не отбрасывается целиком.
func Normalize(label string, score any) domain.SentimentResult {
	out := domain.SentimentResult{Label: domain.SentimentUnknown}

	switch norm := strings.ToUpper(strings.TrimSpace(label)); norm {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
		out.Label = norm
	}

	if v, ok := toFloat(score); ok && v >= 0 && v <= 1 {
		out.Score = v
	}

	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// truncate — обрезает текст до max рун перед отправкой провайдеру.
func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func neutralDefault() domain.SentimentResult {
	return domain.SentimentResult{Label: domain.SentimentNeutral, Score: 0.5}
}

func neutralEmpty() domain.SentimentResult {
	return domain.SentimentResult{Label: domain.SentimentNeutral, Score: 0.0}
}
