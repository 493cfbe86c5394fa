package pubsub

import (
	"sync"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

// Проверка, что Bus удовлетворяет портам подписки и публикации.
var (
	_ ports.StockEvents    = (*Bus)(nil)
	_ ports.EventPublisher = (*Bus)(nil)
)

// Bus — шина push-событий: fan-out на всех подписчиков типа события.
// Каждый подписчик получает каждое событие независимо; конкурирующих
// потребителей нет. Порядок доставки — порядок прихода: для одного товара
// авторитетно последнее доставленное событие (других сигналов порядка у
// клиента нет).
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[domain.EventType]map[uint64]ports.PushHandler
}

// NewBus — пустая шина.
func NewBus() *Bus {
	return &Bus{subs: make(map[domain.EventType]map[uint64]ports.PushHandler)}
}

// Subscribe — регистрирует обработчик на тип события и возвращает функцию
// снятия подписки. Время жизни подписки привязывается вызывающей стороной
// к времени жизни компонента: подписка при создании, снятие при закрытии,
// чтобы слушатели не утекали. Повторный вызов unsubscribe безопасен.
func (b *Bus) Subscribe(eventType domain.EventType, handler ports.PushHandler) ports.Unsubscribe {
	if handler == nil {
		return func() {}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[eventType] == nil {
		b.subs[eventType] = make(map[uint64]ports.PushHandler)
	}
	id := b.nextID
	b.nextID++
	b.subs[eventType][id] = handler
	metrics.PushSubscribers.Inc()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[eventType][id]; ok {
				delete(b.subs[eventType], id)
				metrics.PushSubscribers.Dec()
			}
		})
	}
}

// Publish — доставляет событие всем текущим подписчикам его типа.
// Список подписчиков копируется под блокировкой, вызовы идут вне её:
// обработчик может подписываться/отписываться, не взводя дедлок.
func (b *Bus) Publish(event domain.PushEvent) {
	b.mu.Lock()
	handlers := make([]ports.PushHandler, 0, len(b.subs[event.Type]))
	for _, h := range b.subs[event.Type] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	metrics.PushEvents.WithLabelValues(string(event.Type)).Inc()

	for _, h := range handlers {
		h(event)
	}
}
