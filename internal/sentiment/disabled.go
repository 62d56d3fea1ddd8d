package sentiment

import (
	"context"

	"github.com/mentionscope/mentions-worker/internal/domain"
	"github.com/mentionscope/mentions-worker/internal/ports"
)

var _ ports.SentimentClassifier = (*Disabled)(nil)

// Disabled — классификатор без провайдера: всегда нейтральный дефолт
// {NEUTRAL, 0.5} без единого внешнего вызова. Это штатный деградированный
// режим, а не ошибка.
type Disabled struct{}

func NewDisabled() *Disabled { return &Disabled{} }

func (*Disabled) Classify(context.Context, string) domain.SentimentResult {
	return neutralDefault()
}
