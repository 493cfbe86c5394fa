package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartService — операции над корзиной для внешних слоёв (HTTP, Checkout Gate).
// Мутации возвращают дискриминированный результат, а не ошибку: отказ по остатку —
// штатный пользовательский исход. Сбой персистентности не фатален и наружу не
// поднимается — состояние в памяти остаётся авторитетным до конца сессии.
type CartService interface {
	AddLine(ctx context.Context, cartKey string, product domain.ProductSnapshot, variant string, qty int) domain.MutationResult
	SetQuantity(ctx context.Context, cartKey, productID, variant string, newQty int) domain.MutationResult
	RemoveLine(ctx context.Context, cartKey, productID, variant string) domain.MutationResult
	Clear(ctx context.Context, cartKey string)

	Lines(ctx context.Context, cartKey string) []domain.CartLine
	QuantityOf(ctx context.Context, cartKey, productID, variant string) int
	Totals(ctx context.Context, cartKey string) domain.Totals
}
