package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mentionscope/mentions-worker/internal/domain"
	"github.com/mentionscope/mentions-worker/internal/ports"
)

var _ ports.SentimentClassifier = (*HuggingFaceClassifier)(nil)

// HuggingFaceClassifier — классификатор на inference-endpoint HuggingFace.
// Формат ответа зависит от модели: список списков ([[{label, score}]])
// или плоский список ([{label, score}]) — поддерживаем оба.
type HuggingFaceClassifier struct {
	endpoint string
	apiKey   string
	maxChars int
	http     *http.Client
	log      ports.Logger
}

func NewHuggingFaceClassifier(apiKey, endpoint string, maxChars int, log ports.Logger) *HuggingFaceClassifier {
	return &HuggingFaceClassifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		maxChars: maxChars,
		http:     &http.Client{Timeout: 15 * time.Second},
		log:      log,
	}
}

func (c *HuggingFaceClassifier) Classify(ctx context.Context, text string) domain.SentimentResult {
	if c.apiKey == "" || c.endpoint == "" {
		return neutralDefault()
	}
	if strings.TrimSpace(text) == "" {
		return neutralEmpty()
	}

	body, err := json.Marshal(map[string]string{"inputs": truncate(text, c.maxChars)})
	if err != nil {
		c.log.Warnf(ctx, "sentiment: marshal request: %v", err)
		return domain.SentimentResult{Label: domain.SentimentErrorUnknown}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.log.Warnf(ctx, "sentiment: new request: %v", err)
		return domain.SentimentResult{Label: domain.SentimentErrorUnknown}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf(ctx, "sentiment: request failed: %v", err)
		return domain.SentimentResult{Label: domain.SentimentErrorAPI}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warnf(ctx, "sentiment: http status %d from %s", resp.StatusCode, c.endpoint)
		return domain.SentimentResult{Label: domain.SentimentErrorHTTP}
	}

	var payload any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		c.log.Warnf(ctx, "sentiment: response decode failed: %v", decodeErr)
		return domain.SentimentResult{Label: domain.SentimentErrorJSONDecode}
	}

	label, score, ok := extractFirst(payload)
	if !ok {
		c.log.Warnf(ctx, "sentiment: unexpected response shape")
		return domain.SentimentResult{Label: domain.SentimentErrorJSONDecode}
	}

	return Normalize(label, score)
}

// extractFirst — достаёт первую пару (label, score) из ответа:
// [[{...}]] и [{...}] равнозначны.
func extractFirst(payload any) (label string, score any, ok bool) {
	list, isList := payload.([]any)
	if !isList || len(list) == 0 {
		return "", nil, false
	}

	first := list[0]
	if inner, nested := first.([]any); nested {
		if len(inner) == 0 {
			return "", nil, false
		}
		first = inner[0]
	}

	obj, isObj := first.(map[string]any)
	if !isObj {
		return "", nil, false
	}

	label, _ = obj["label"].(string)
	return label, obj["score"], true
}
