package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartCache — кэш гидрированных корзин перед хранилищем.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий позиций.
type CartCache interface {
	// Get — позиции корзины по ключу; (lines, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, cartKey string) ([]domain.CartLine, bool)

	// Set — сохранить/обновить позиции корзины в кэше.
	Set(ctx context.Context, cartKey string, lines []domain.CartLine) error

	// Drop — убрать корзину из кэша (clear / успешный чекаут).
	Drop(ctx context.Context, cartKey string)
}
