package ports

import (
	"context"

	"github.com/mentionscope/mentions-worker/internal/domain"
)

// SentimentClassifier — внешний классификатор тональности.
// Контракт: Classify всегда возвращает значение и никогда — ошибку;
// сбои провайдера сворачиваются в сентинельные метки ERROR_*
// (неудавшееся обогащение не должно блокировать сохранение записи).
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) domain.SentimentResult
}
