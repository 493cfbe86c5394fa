package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// OrderSubmitter — исходящая отправка заказа авторитетной стороне.
// Единственная операция подсистемы, блокирующаяся на сети; без автоповторов —
// повторная попытка означает новый проход через Checkout Gate.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload domain.OrderPayload) error
}
