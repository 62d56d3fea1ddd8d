// Пакет ctxmeta — метаданные запроса, прокидываемые через context.Context
// (request_id, trace_id). HTTP-слой кладёт значения, логгер читает;
// друг о друге они при этом не знают.
package ctxmeta

import "context"

type ctxKey string

const (
	// KeyRequestID — ключ request_id; собственный тип ключа исключает
	// коллизии со строковыми ключами чужих пакетов.
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID кладёт request_id в контекст; пустой id контекст не меняет.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id; пустое значение считается отсутствующим.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
