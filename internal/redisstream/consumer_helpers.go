package redisstream

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mentionscope/mentions-worker/internal/usecase"
	"github.com/mentionscope/mentions-worker/pkg/metrics"
)

// Размер пачки при ручном прогоне стрима с начала.
const backlogBatchSize = 100

// handleEntry обрабатывает одну запись и определяет, нужно ли её подтверждать.
func (c *Consumer) handleEntry(ctx context.Context, entry *redis.XMessage) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.cfg.ProcessTimeout)
	err := c.service.ProcessEntry(ctxTimeout, entry.ID, entry.Values)
	cancel()

	switch {
	case err == nil:
		// Успешная обработка: фиксируем метрику и подтверждаем запись
		metrics.StreamEntriesProcessed.WithLabelValues(c.cfg.Stream).Inc()
		return true
	case errors.Is(err, usecase.ErrMalformedEntry):
		// Окончательный брак: подтверждаем, повторная доставка не поможет
		metrics.StreamEntriesFailed.WithLabelValues(c.cfg.Stream).Inc()
		c.log.Warnf(ctx, "malformed entry id=%s: %v (acked)", entry.ID, err)
		return true
	default:
		// Временная ошибка (БД/сеть/таймаут): решает политика подтверждения
		metrics.StreamEntriesFailed.WithLabelValues(c.cfg.Stream).Inc()
		if c.cfg.ackAlways() {
			c.log.Warnf(ctx, "process failed id=%s: %v (acked by policy)", entry.ID, err)
			return true
		}
		c.log.Warnf(ctx, "process failed id=%s: %v (left pending for redelivery)", entry.ID, err)
		return false
	}
}

// ackSafely пытается подтвердить запись и залогировать ошибку.
func (c *Consumer) ackSafely(ctx context.Context, entryID string) {
	if ackErr := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, entryID).Err(); ackErr != nil {
		c.log.Warnf(ctx, "ack failed id=%s: %v", entryID, ackErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// isBusyGroup — ответ BUSYGROUP: consumer group уже существует.
func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}

// isTimeout — таймаут команды (сервер жив, но не успел ответить).
func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
