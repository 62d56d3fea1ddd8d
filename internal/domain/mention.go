package domain

// Метки сентимента. POSITIVE/NEGATIVE/NEUTRAL — содержательные значения от провайдера;
// UNKNOWN — нераспознанная метка; ERROR_* — сентинелы деградированных исходов
// (классификация никогда не возвращает ошибку, только значение).
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
	SentimentUnknown  = "UNKNOWN"

	SentimentErrorAPI        = "ERROR_API"
	SentimentErrorHTTP       = "ERROR_HTTP"
	SentimentErrorJSONDecode = "ERROR_JSON_DECODE"
	SentimentErrorUnknown    = "ERROR_UNKNOWN"
)

// ArticleRecord — декодированное представление полезной нагрузки записи стрима.
// Все поля опциональны: отсутствие ключа — не ошибка, а пустое значение.
// Source хранится как есть (строка или объект {name: ...}) и сплющивается
// при сохранении.
type ArticleRecord struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Source        any    `json:"source"`
	Author        string `json:"author"`
	URL           string `json:"url"`
	ImageURL      string `json:"urlToImage"`
	PublishedAt   string `json:"publishedAt"`
	Content       string `json:"content"`
	SearchKeyword string `json:"search_keyword"`
}

// SentimentResult — нормализованная пара (метка, оценка).
// Инвариант: Score всегда в [0.0, 1.0]; значение вне диапазона или
// нечислового типа заменяется на 0.0, нераспознанная метка — на UNKNOWN.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// EnrichedMention — результат обогащения: запись + сентимент + исходная
// полезная нагрузка (для аудита). Создаётся один раз на сообщение,
// прошедшее фильтр; записывается в хранилище один раз, без update/delete.
type EnrichedMention struct {
	Article   ArticleRecord
	Sentiment SentimentResult
	Raw       map[string]any
}

// SourceName — сплющивает source: голая строка или объект {name: ...}
// превращаются в одну строку; всё остальное — пустая строка.
func (r ArticleRecord) SourceName() string {
	switch v := r.Source.(type) {
	case string:
		return v
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}
	}
	return ""
}

// SentimentText — текст для классификации: description, при его отсутствии title.
func (r ArticleRecord) SentimentText() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Title
}
