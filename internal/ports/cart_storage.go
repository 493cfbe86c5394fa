package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// CartStorage — долговременное хранилище сериализованной корзины (write-through:
// запись после каждой успешной мутации, чтение только при гидрации).
type CartStorage interface {
	// Load — вернуть сохранённые позиции по ключу корзины.
	// Отсутствие или повреждение данных — это пустая корзина (nil, nil), не ошибка.
	Load(ctx context.Context, cartKey string) ([]domain.CartLine, error)

	// Save — идемпотентно сохранить текущие позиции.
	Save(ctx context.Context, cartKey string, lines []domain.CartLine) error

	// Delete — удалить запись корзины (clear / успешный чекаут).
	Delete(ctx context.Context, cartKey string) error
}
