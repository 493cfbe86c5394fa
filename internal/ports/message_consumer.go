package ports

import "context"

// MessageConsumer — жизненный цикл фонового потребителя push-событий.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
