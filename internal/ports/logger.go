package ports

import "context"

// Logger — контракт логгера для слоёв приложения. Контекст передаётся
// первым аргументом, чтобы реализация могла дописывать в строку метаданные
// запроса (request_id, trace_id).
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
