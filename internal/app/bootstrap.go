package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mentionscope/mentions-worker/config"
	"github.com/mentionscope/mentions-worker/internal/ports"
	"github.com/mentionscope/mentions-worker/internal/redisstream"
	"github.com/mentionscope/mentions-worker/internal/repo/postgres"
	"github.com/mentionscope/mentions-worker/internal/sentiment"
	rest "github.com/mentionscope/mentions-worker/internal/transport/http"
	"github.com/mentionscope/mentions-worker/internal/usecase"
	"github.com/mentionscope/mentions-worker/pkg/logger"
	"github.com/mentionscope/mentions-worker/pkg/metrics"
	"github.com/mentionscope/mentions-worker/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	StreamConsumer  ports.MessageConsumer // консьюмер записей стрима
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// buildClassifier — выбор классификатора тональности по конфигурации.
// Пустой или неизвестный провайдер — нейтральный режим без внешних вызовов.
func buildClassifier(ctx context.Context, cfg config.Sentiment, log ports.Logger) ports.SentimentClassifier {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "openai":
		return sentiment.NewOpenAIClassifier(cfg.APIKey, cfg.Model, "", cfg.MaxTokens, cfg.MaxChars, log)
	case "huggingface":
		return sentiment.NewHuggingFaceClassifier(cfg.APIKey, cfg.Endpoint, cfg.MaxChars, log)
	case "":
		log.Infof(ctx, "sentiment provider not set, classification disabled")
		return sentiment.NewDisabled()
	default:
		log.Warnf(ctx, "unknown sentiment provider %q, classification disabled", cfg.Provider)
		return sentiment.NewDisabled()
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	mentionRepo := postgres.NewMentionRepository(pool)
	classifier := buildClassifier(ctx, cfg.Sentiment, logg)
	mentionService := usecase.NewMentionService(mentionRepo, classifier, logg)

	// Консьюмер Redis Streams. Имя консьюмера уникально на процесс,
	// чтобы инстансы не делили pending-записи друг друга.
	consumerName := cfg.Redis.ConsumerPrefix + strconv.Itoa(os.Getpid())
	consumer, err := redisstream.NewConsumer(ctx, redisstream.ConsumerConfig{
		URL:            cfg.Redis.URL,
		Stream:         cfg.Redis.Stream,
		Group:          cfg.Redis.Group,
		Consumer:       consumerName,
		Block:          cfg.Redis.Block,
		ConnectBackoff: cfg.Redis.ConnectBackoff,
		TimeoutBackoff: cfg.Redis.TimeoutBackoff,
		ProcessTimeout: cfg.Redis.ProcessTimeout,
		AckPolicy:      cfg.Redis.AckPolicy,
	}, mentionService, logg)
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(consumer, logg, cfg.Redis.ProcessTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName, "")

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		StreamConsumer:  consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "stream consumer close error: %v", err)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "stream consumer starting")
		if err := a.StreamConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка консьюмера
	if err := a.StreamConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "stream consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
