package ports

import (
	"context"

	"github.com/mentionscope/mentions-worker/internal/domain"
)

// MentionRepository — хранилище обогащённых упоминаний.
// Save выполняет один insert; идемпотентного ключа нет — повторная доставка
// одного и того же сообщения даёт дубликат строки (осознанный компромисс
// at-least-once; дедупликация — забота потребителей данных).
type MentionRepository interface {
	Save(ctx context.Context, mention *domain.EnrichedMention) error
}
