package ports

import "github.com/Gunvolt24/wb_cart/internal/domain"

// PushHandler — обработчик одного push-события.
type PushHandler func(domain.PushEvent)

// Unsubscribe — снятие подписки; повторный вызов безопасен.
type Unsubscribe func()

// StockEvents — подписка на push-события сервера (fan-out: каждый подписчик
// получает каждое событие независимо, конкурирующих потребителей нет).
// Гарантий порядка между товарами нет; для одного товара авторитетно
// последнее доставленное событие.
type StockEvents interface {
	Subscribe(eventType domain.EventType, handler PushHandler) Unsubscribe
}

// EventPublisher — публикация событий в шину (сторона транспорта push-канала).
type EventPublisher interface {
	Publish(event domain.PushEvent)
}
