//go:build !otel || gopls

package ctxmeta

import "context"

// Сборка без тега `otel`: идентификаторов трейса нет, логгер их не пишет.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
