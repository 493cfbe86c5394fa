package domain

// CapturedStock — остаток товара, зафиксированный в момент добавления в корзину.
// ObservedStock — остаток, наблюдаемый по push-событиям на витрине.
// Это разные величины: снимок в корзине никогда не перезаписывается push-дельтами,
// расхождение разрешается только на этапе чекаута.
type CapturedStock int

type ObservedStock int

// ProductSnapshot — снимок карточки товара на момент добавления в корзину.
// Поля неизменяемы после захвата.
type ProductSnapshot struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Price int           `json:"price"` // цена в рублях за единицу
	Image string        `json:"image"`
	Stock CapturedStock `json:"stock_at_capture"`
}
