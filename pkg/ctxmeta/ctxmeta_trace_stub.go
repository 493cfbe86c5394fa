//go:build !otel || gopls

package ctxmeta

import "context"

// Сборка без тега `otel`: trace/span недоступны, отдаём заглушки.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
