package redisstream

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/mentionscope/mentions-worker/internal/ports"
	"github.com/mentionscope/mentions-worker/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// streamClient — минимальный контракт над redis.Client,
// чтобы легко подменять его моками в тестах.
type streamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XRead(ctx context.Context, a *redis.XReadArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	Close() error
}

// entryProcessor — зависимость на бизнес-логику,
// которая декодирует/фильтрует/обогащает/сохраняет запись.
type entryProcessor interface {
	ProcessEntry(ctx context.Context, entryID string, payload map[string]any) error
}

// Consumer — обёртка над клиентом Redis Streams + зависимостями (usecase, logger).
type Consumer struct {
	client    streamClient
	service   entryProcessor
	log       ports.Logger
	cfg       ConsumerConfig
	closeOnce sync.Once
}

// NewConsumer — конструктор. Проверяет доступность Redis одним PING;
// недоступность сервера не фатальна — Run переподключится по backoff.
func NewConsumer(ctx context.Context, cfg ConsumerConfig, service entryProcessor, log ports.Logger) (*Consumer, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	cfg.applyDefaults()

	client := redis.NewClient(opts)
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		log.Warnf(ctx, "redis ping failed: %v (consumer will keep retrying)", pingErr)
	} else {
		log.Infof(ctx, "connected to redis addr=%s", opts.Addr)
	}

	return &Consumer{
		client:  client,
		service: service,
		log:     log,
		cfg:     cfg,
	}, nil
}

// EnsureGroup — идемпотентное создание consumer group (MKSTREAM, чтение с '0').
// Ответ BUSYGROUP означает, что группа уже есть, — это не ошибка.
func (c *Consumer) EnsureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		return fmt.Errorf("create group %s: %w", c.cfg.Group, err)
	}
	return nil
}

// Run — основной цикл:
// 1) убеждаемся, что consumer group существует (любая ошибка кроме BUSYGROUP
//    фатальна — без группы консьюмеру стартовать нельзя);
// 2) читаем одну новую запись XREADGROUP с блокировкой;
// 3) успешная обработка и окончательный брак → XACK;
// 4) временная ошибка → по политике подтверждения (ack либо запись остаётся в pending);
// 5) таймаут команды → короткая пауза; ошибка соединения → длинная пауза и повторная
//    проверка группы (Redis мог быть пересоздан без наших структур).
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.EnsureGroup(ctx); err != nil {
		return err
	}

	c.log.Infof(ctx, "stream consumer started stream=%s group=%s consumer=%s ack_policy=%s",
		c.cfg.Stream, c.cfg.Group, c.cfg.Consumer, c.cfg.AckPolicy)

	for {
		streams, readErr := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.cfg.Group,
			Consumer: c.cfg.Consumer,
			Streams:  []string{c.cfg.Stream, ">"},
			Count:    1,
			Block:    c.cfg.Block,
		}).Result()
		if readErr != nil {
			// Если контекст отменен -> выходим
			if ctx.Err() != nil {
				return ctx.Err()
			}
			switch {
			case errors.Is(readErr, redis.Nil):
				// Блокировка истекла без новых записей — читаем дальше.
				continue
			case isTimeout(readErr):
				c.log.Warnf(ctx, "read timed out: %v (will retry in %s)", readErr, c.cfg.TimeoutBackoff)
				if !c.sleepWithBackoff(ctx, c.cfg.TimeoutBackoff) {
					return ctx.Err()
				}
			default:
				// Ошибка соединения: ждём и на всякий случай пересоздаём группу.
				c.log.Warnf(ctx, "read failed: %v (will retry in %s)", readErr, c.cfg.ConnectBackoff)
				if !c.sleepWithBackoff(ctx, c.cfg.ConnectBackoff) {
					return ctx.Err()
				}
				if ensureErr := c.EnsureGroup(ctx); ensureErr != nil {
					c.log.Warnf(ctx, "ensure group failed after reconnect: %v", ensureErr)
				}
			}
			continue
		}

		for _, s := range streams {
			for i := range s.Messages {
				entry := &s.Messages[i]
				metrics.StreamEntriesConsumed.WithLabelValues(c.cfg.Stream).Inc()
				if shouldAck := c.handleEntry(ctx, entry); shouldAck {
					c.ackSafely(ctx, entry.ID)
				}
			}
		}
	}
}

// ProcessBacklog — разовая обработка стрима с самого начала, без блокировки
// и без подтверждений (записи остаются на месте). Используется ручным
// HTTP-триггером для прогонов на истории.
func (c *Consumer) ProcessBacklog(ctx context.Context) (int, error) {
	streams, err := c.client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{c.cfg.Stream, "0-0"},
		Count:   backlogBatchSize,
		Block:   -1, // без блокировки: нет записей — сразу выходим
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("read backlog: %w", err)
	}

	processed := 0
	for _, s := range streams {
		for i := range s.Messages {
			entry := &s.Messages[i]
			ctxTimeout, cancel := context.WithTimeout(ctx, c.cfg.ProcessTimeout)
			procErr := c.service.ProcessEntry(ctxTimeout, entry.ID, entry.Values)
			cancel()
			if procErr != nil {
				c.log.Warnf(ctx, "backlog entry failed id=%s: %v", entry.ID, procErr)
				continue
			}
			processed++
		}
	}
	return processed, nil
}

// Close - закрывает клиент Redis. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.client.Close()
	})
	return retErr
}
