package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mentionscope/mentions-worker/internal/domain"
	"github.com/mentionscope/mentions-worker/internal/ports"
	"github.com/mentionscope/mentions-worker/pkg/metrics"
)

// MentionService — прикладная логика обработки упоминаний (без знаний о транспорте).
type MentionService struct {
	repo       ports.MentionRepository   // прямой доступ к хранилищу
	classifier ports.SentimentClassifier // прямой доступ к классификатору
	log        ports.Logger              // прямой доступ к логгеру
}

// NewMentionService — DI-конструктор.
func NewMentionService(
	repo ports.MentionRepository,
	classifier ports.SentimentClassifier,
	log ports.Logger,
) *MentionService {
	return &MentionService{
		repo:       repo,
		classifier: classifier,
		log:        log,
	}
}

// ProcessEntry — обработать одну запись стрима.
// Шаги:
//  1. привести поля записи к доменной статье (брак —> ErrMalformedEntry);
//  2. отсеять шум (короткий заголовок/описание) — это успех, а не ошибка;
//  3. посчитать тональность (классификатор не падает — сбои сворачиваются в ERROR_*);
//  4. сохранить обогащённое упоминание в БД.
// Ошибка возврата означает: запись не сохранена; решать, подтверждать ли её,
// будет вызывающая сторона.
func (s *MentionService) ProcessEntry(ctx context.Context, entryID string, payload map[string]any) error {
	article, raw, err := decodeArticle(payload)
	if err != nil {
		s.log.Warnf(ctx, "malformed entry id=%s err=%v", entryID, err)
		return err
	}

	if isNoise(article) {
		metrics.EntriesFiltered.Inc()
		s.log.Infof(ctx, "entry filtered as noise id=%s title=%q", entryID, article.Title)
		return nil
	}

	start := time.Now()
	sentiment := s.classifier.Classify(ctx, article.SentimentText())
	metrics.SentimentResults.WithLabelValues(sentiment.Label).Inc()

	mention := &domain.EnrichedMention{
		Article:   *article,
		Sentiment: sentiment,
		Raw:       raw,
	}
	if err := s.repo.Save(ctx, mention); err != nil {
		metrics.PersistFailures.Inc()
		s.log.Errorf(ctx, "repo.Save failed id=%s err=%v", entryID, err)
		return fmt.Errorf("failed to save mention: %w", err)
	}

	s.log.Infof(ctx, "mention saved id=%s sentiment=%s score=%.2f took=%s",
		entryID, sentiment.Label, sentiment.Score, time.Since(start))
	return nil
}
