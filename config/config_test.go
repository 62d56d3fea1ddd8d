package config_test

import (
	"testing"
	"time"

	cfg "github.com/mentionscope/mentions-worker/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("MENTIONS_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8000" {
		t.Fatalf("HTTP.Addr: want :8000, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "mentions-worker" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Redis
	if c.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("Redis.URL default wrong: %q", c.Redis.URL)
	}
	if c.Redis.Stream != "mentions_stream" || c.Redis.Group != "mentions_processor_group" {
		t.Fatalf("Redis stream/group defaults wrong: %+v", c.Redis)
	}
	if c.Redis.ConsumerPrefix != "consumer_" {
		t.Fatalf("Redis.ConsumerPrefix: want consumer_, got %q", c.Redis.ConsumerPrefix)
	}
	if c.Redis.Block != 10*time.Second {
		t.Fatalf("Redis.Block: want 10s, got %v", c.Redis.Block)
	}
	if c.Redis.ConnectBackoff != 5*time.Second || c.Redis.TimeoutBackoff != 1*time.Second {
		t.Fatalf("Redis backoffs wrong: %+v", c.Redis)
	}
	if c.Redis.ProcessTimeout != 30*time.Second {
		t.Fatalf("Redis.ProcessTimeout: want 30s, got %v", c.Redis.ProcessTimeout)
	}
	if c.Redis.AckPolicy != "always" {
		t.Fatalf("Redis.AckPolicy: want always, got %q", c.Redis.AckPolicy)
	}

	// Sentiment
	if c.Sentiment.Provider != "" {
		t.Fatalf("Sentiment.Provider: want empty, got %q", c.Sentiment.Provider)
	}
	if c.Sentiment.Model != "gpt-4o-mini" {
		t.Fatalf("Sentiment.Model default wrong: %q", c.Sentiment.Model)
	}
	if c.Sentiment.Endpoint == "" {
		t.Fatalf("Sentiment.Endpoint should have default, got empty")
	}
	if c.Sentiment.MaxTokens != 32 || c.Sentiment.MaxChars != 2000 {
		t.Fatalf("Sentiment limits wrong: %+v", c.Sentiment)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "MENTIONS_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "7s")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Redis
	t.Setenv(p+"_REDIS_URL", "redis://redis-test:6380/1")
	t.Setenv(p+"_REDIS_STREAM", "mentions-test")
	t.Setenv(p+"_REDIS_GROUP", "g-test")
	t.Setenv(p+"_REDIS_CONSUMER_PREFIX", "worker_")
	t.Setenv(p+"_REDIS_BLOCK", "2s")
	t.Setenv(p+"_REDIS_CONNECT_BACKOFF", "250ms")
	t.Setenv(p+"_REDIS_TIMEOUT_BACKOFF", "100ms")
	t.Setenv(p+"_REDIS_PROCESS_TIMEOUT", "12s")
	t.Setenv(p+"_REDIS_ACK_POLICY", "on-success")

	// Sentiment
	t.Setenv(p+"_SENTIMENT_PROVIDER", "openai")
	t.Setenv(p+"_SENTIMENT_API_KEY", "sk-test")
	t.Setenv(p+"_SENTIMENT_MODEL", "gpt-4o")
	t.Setenv(p+"_SENTIMENT_MAX_TOKENS", "64")
	t.Setenv(p+"_SENTIMENT_MAX_CHARS", "500")

	// Postgres
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.GracefulTimeout != 7*time.Second {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Redis.URL != "redis://redis-test:6380/1" || c.Redis.Stream != "mentions-test" || c.Redis.Group != "g-test" {
		t.Fatalf("Redis basic overrides wrong: %+v", c.Redis)
	}
	if c.Redis.ConsumerPrefix != "worker_" || c.Redis.Block != 2*time.Second {
		t.Fatalf("Redis consumer overrides wrong: %+v", c.Redis)
	}
	if c.Redis.ConnectBackoff != 250*time.Millisecond || c.Redis.TimeoutBackoff != 100*time.Millisecond {
		t.Fatalf("Redis backoff overrides wrong: %+v", c.Redis)
	}
	if c.Redis.ProcessTimeout != 12*time.Second || c.Redis.AckPolicy != "on-success" {
		t.Fatalf("Redis process/ack overrides wrong: %+v", c.Redis)
	}
	if c.Sentiment.Provider != "openai" || c.Sentiment.APIKey != "sk-test" || c.Sentiment.Model != "gpt-4o" {
		t.Fatalf("Sentiment overrides wrong: %+v", c.Sentiment)
	}
	if c.Sentiment.MaxTokens != 64 || c.Sentiment.MaxChars != 500 {
		t.Fatalf("Sentiment limit overrides wrong: %+v", c.Sentiment)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "MENTIONS_TEST_BAD"
	t.Setenv(p+"_REDIS_BLOCK", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
