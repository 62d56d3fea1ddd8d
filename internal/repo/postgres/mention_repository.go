package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentionscope/mentions-worker/internal/domain"
	"github.com/mentionscope/mentions-worker/internal/ports"
)

// Предельная длина превью содержимого статьи.
const contentPreviewLimit = 255

// Проверка, что MentionRepository удовлетворяет порту MentionRepository.
var _ ports.MentionRepository = (*MentionRepository)(nil)

// MentionRepository — реализация хранилища упоминаний на Postgres (pgxpool).
// Только вставка: записи не обновляются и не удаляются, дедупликации нет
// (повторная доставка при at-least-once даёт дубликат строки).
type MentionRepository struct {
	pool *pgxpool.Pool
}

// NewMentionRepository - конструктор MentionRepository.
func NewMentionRepository(pool *pgxpool.Pool) *MentionRepository { return &MentionRepository{pool: pool} }

// Save — вставляет одно обогащённое упоминание.
func (r *MentionRepository) Save(ctx context.Context, mention *domain.EnrichedMention) error {
	if mention == nil {
		return errors.New("mention is empty")
	}

	rawData, err := json.Marshal(mention.Raw)
	if err != nil {
		return fmt.Errorf("marshal raw payload: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		INSERT INTO mentions (
			source, author, title, description, url, image_url,
			published_at, content_preview, sentiment_label, sentiment_score,
			search_keyword, raw_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		mention.Article.SourceName(),
		mention.Article.Author,
		mention.Article.Title,
		mention.Article.Description,
		mention.Article.URL,
		mention.Article.ImageURL,
		mention.Article.PublishedAt,
		contentPreview(mention.Article.Content),
		mention.Sentiment.Label,
		mention.Sentiment.Score,
		mention.Article.SearchKeyword,
		rawData,
	)
	if err != nil {
		return fmt.Errorf("insert mention: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("insert mention: unexpected rows affected %d", tag.RowsAffected())
	}
	return nil
}

// contentPreview — обрезает содержимое статьи до предельной длины (по рунам).
func contentPreview(content string) string {
	runes := []rune(content)
	if len(runes) <= contentPreviewLimit {
		return content
	}
	return string(runes[:contentPreviewLimit])
}
