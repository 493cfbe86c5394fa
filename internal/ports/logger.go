package ports

import "context"

// Logger — минимальный контракт логгера; контекст передаётся, чтобы
// реализация могла дописать request_id и cart_key.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения (персист не удался и т.п.).
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
