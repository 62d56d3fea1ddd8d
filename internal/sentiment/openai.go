package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/mentionscope/mentions-worker/internal/domain"
	"github.com/mentionscope/mentions-worker/internal/ports"
)

var _ ports.SentimentClassifier = (*OpenAIClassifier)(nil)

// systemPrompt — ограничивает модель строго структурированным ответом:
// только метка и оценка, ничего больше.
const systemPrompt = `You are a sentiment classifier. ` +
	`Respond with a JSON object of exactly two keys: ` +
	`"label" (one of "POSITIVE", "NEGATIVE", "NEUTRAL") and "score" (a number from 0.0 to 1.0). ` +
	`Do not add any other keys or text.`

// OpenAIClassifier — классификатор на chat-completion API.
// Пустой API-ключ переводит клиент в деградированный режим (нейтральный
// дефолт без внешних вызовов).
type OpenAIClassifier struct {
	client    *openai.Client
	model     string
	maxTokens int
	maxChars  int
	log       ports.Logger
}

// NewOpenAIClassifier — конструктор. baseURL непустой — для совместимых
// шлюзов и тестовых серверов.
func NewOpenAIClassifier(apiKey, model, baseURL string, maxTokens, maxChars int, log ports.Logger) *OpenAIClassifier {
	c := &OpenAIClassifier{
		model:     model,
		maxTokens: maxTokens,
		maxChars:  maxChars,
		log:       log,
	}
	if apiKey == "" {
		return c
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	c.client = openai.NewClientWithConfig(cfg)
	return c
}

// Classify — один запрос к провайдеру: system+user пара, JSON-ограничение
// на форму ответа, лимит на токены. Любой сбой сворачивается в сентинельный
// результат — ошибок наружу нет.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) domain.SentimentResult {
	if c.client == nil {
		return neutralDefault()
	}
	if strings.TrimSpace(text) == "" {
		return neutralEmpty()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: truncate(text, c.maxChars)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return c.faultResult(ctx, err)
	}
	if len(resp.Choices) == 0 {
		c.log.Warnf(ctx, "sentiment: empty choices in provider response")
		return domain.SentimentResult{Label: domain.SentimentErrorAPI}
	}

	var parsed struct {
		Label string `json:"label"`
		Score any    `json:"score"`
	}
	if jsonErr := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); jsonErr != nil {
		c.log.Warnf(ctx, "sentiment: response decode failed: %v", jsonErr)
		return domain.SentimentResult{Label: domain.SentimentErrorJSONDecode}
	}

	return Normalize(parsed.Label, parsed.Score)
}

// faultResult — раскладывает ошибку клиента по сентинелам:
// ошибка уровня API → ERROR_API, не-2xx статус от транспорта → ERROR_HTTP,
// всё прочее → ERROR_UNKNOWN.
func (c *OpenAIClassifier) faultResult(ctx context.Context, err error) domain.SentimentResult {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		c.log.Warnf(ctx, "sentiment: provider error status=%d: %v", apiErr.HTTPStatusCode, err)
		return domain.SentimentResult{Label: domain.SentimentErrorAPI}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		c.log.Warnf(ctx, "sentiment: http error status=%d: %v", reqErr.HTTPStatusCode, err)
		return domain.SentimentResult{Label: domain.SentimentErrorHTTP}
	}

	c.log.Warnf(ctx, "sentiment: unexpected error: %v", err)
	return domain.SentimentResult{Label: domain.SentimentErrorUnknown}
}
