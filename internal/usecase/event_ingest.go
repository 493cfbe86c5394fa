package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/validate"
)

// eventEnvelope — конверт сообщения push-канала: {event, data}.
type eventEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// EventIngest — приём сырых сообщений push-канала: разбор конверта,
// валидация дельты остатка, публикация в шину. Ошибки валидации помечаются
// validate.ErrInvalidEvent — транспорт пропускает такие сообщения навсегда.
type EventIngest struct {
	bus       ports.EventPublisher
	validator ports.EventValidator
	log       ports.Logger
}

// NewEventIngest — DI-конструктор.
func NewEventIngest(bus ports.EventPublisher, validator ports.EventValidator, log ports.Logger) *EventIngest {
	return &EventIngest{bus: bus, validator: validator, log: log}
}

// HandleMessage — обработка одного сырого сообщения.
func (e *EventIngest) HandleMessage(ctx context.Context, raw []byte) error {
	var env eventEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: invalid envelope json: %v", validate.ErrInvalidEvent, err)
	}

	switch domain.EventType(env.Event) {
	case domain.EventStockUpdate:
		return e.handleStockUpdate(ctx, env.Data)

	case domain.EventOrderNew, domain.EventOrderUpdate:
		// Сигналы без данных: публикуем только тип — подписчики перечитывают
		// состояние целиком, дельту сливать нечего.
		e.bus.Publish(domain.PushEvent{Type: domain.EventType(env.Event)})
		return nil

	default:
		return fmt.Errorf("%w: unknown event type %q", validate.ErrInvalidEvent, env.Event)
	}
}

func (e *EventIngest) handleStockUpdate(ctx context.Context, data json.RawMessage) error {
	var stock domain.StockEvent
	if err := json.Unmarshal(data, &stock); err != nil {
		return fmt.Errorf("%w: invalid stock payload: %v", validate.ErrInvalidEvent, err)
	}

	if err := e.validator.Validate(ctx, &stock); err != nil {
		return fmt.Errorf("validate stock event: %w", err)
	}

	e.bus.Publish(domain.PushEvent{Type: domain.EventStockUpdate, Stock: &stock})
	e.log.Infof(ctx, "stock update product_id=%s new_stock=%d cause=%s", stock.ProductID, stock.NewStock, stock.Cause)
	return nil
}
