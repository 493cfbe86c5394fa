package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// EventValidator — валидация push-события об остатке.
type EventValidator interface {
	Validate(ctx context.Context, event *domain.StockEvent) error
}
