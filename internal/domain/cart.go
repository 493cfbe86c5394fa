package domain

import "fmt"

// CartLine — одна позиция корзины: (товар, вариант) + количество.
type CartLine struct {
	Product  ProductSnapshot `json:"product"`
	Variant  string          `json:"variant,omitempty"` // размер/цвет; пустая строка = без варианта
	Quantity int             `json:"quantity"`
}

// Key — ключ уникальности позиции.
func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Variant: l.Variant}
}

// LineKey — ключ (product_id, variant); двух позиций с одним ключом не бывает.
type LineKey struct {
	ProductID string
	Variant   string
}

// Cart — состояние корзины: упорядоченный список позиций
// (порядок вставки важен только для отображения).
//
// Инвариант: для каждой позиции quantity <= product.Stock (снимок на момент захвата).
// Инвариант проверяется на мутациях и в Checkout Gate, а не непрерывно: между
// push-событиями состояние может расходиться с живым остатком — это осознанно.
type Cart struct {
	lines []CartLine
}

// NewCart — корзина из сохранённых ранее позиций (порядок сохраняется).
// nil или пустой срез дают пустую корзину.
func NewCart(lines []CartLine) *Cart {
	c := &Cart{}
	if len(lines) > 0 {
		c.lines = append(c.lines, lines...)
	}
	return c
}

// AddLine — добавить товар в корзину (или увеличить количество существующей позиции).
// qty < 1 нормализуется к 1. Снимок товара захватывается только при первом добавлении:
// повторный вызов с тем же ключом не перезаписывает снимок, а валидация идёт
// по изначально захваченному остатку.
func (c *Cart) AddLine(product ProductSnapshot, variant string, qty int) MutationResult {
	if qty < 1 {
		qty = 1
	}

	key := LineKey{ProductID: product.ID, Variant: variant}
	idx := c.indexOf(key)

	bound := product.Stock
	alreadyInCart := 0
	if idx >= 0 {
		bound = c.lines[idx].Product.Stock
		alreadyInCart = c.lines[idx].Quantity
	}

	if bound == 0 {
		return outOfStock(product.Title)
	}
	if alreadyInCart+qty > int(bound) {
		return insufficientStock(product.Title, int(bound)-alreadyInCart)
	}

	if idx >= 0 {
		c.lines[idx].Quantity += qty
	} else {
		c.lines = append(c.lines, CartLine{Product: product, Variant: variant, Quantity: qty})
	}
	return ok()
}

// SetQuantity — установить количество позиции. newQty < 1 эквивалентно удалению.
// Валидация только по захваченному остатку самой позиции — живой кэш витрины
// корзине не принадлежит.
func (c *Cart) SetQuantity(productID, variant string, newQty int) MutationResult {
	if newQty < 1 {
		return c.RemoveLine(productID, variant)
	}

	idx := c.indexOf(LineKey{ProductID: productID, Variant: variant})
	if idx < 0 {
		return notFound(productID)
	}

	line := &c.lines[idx]
	if newQty > int(line.Product.Stock) {
		return insufficientStock(line.Product.Title, int(line.Product.Stock)-line.Quantity)
	}

	line.Quantity = newQty
	return ok()
}

// RemoveLine — безусловное удаление позиции; удаление отсутствующей — no-op успех.
func (c *Cart) RemoveLine(productID, variant string) MutationResult {
	idx := c.indexOf(LineKey{ProductID: productID, Variant: variant})
	if idx >= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	}
	return ok()
}

// Clear — опустошает корзину.
func (c *Cart) Clear() {
	c.lines = nil
}

// QuantityOf — количество по ключу; 0 при отсутствии позиции.
func (c *Cart) QuantityOf(productID, variant string) int {
	if idx := c.indexOf(LineKey{ProductID: productID, Variant: variant}); idx >= 0 {
		return c.lines[idx].Quantity
	}
	return 0
}

// Lines — копия позиций в порядке вставки.
func (c *Cart) Lines() []CartLine {
	if len(c.lines) == 0 {
		return nil
	}
	return append([]CartLine(nil), c.lines...)
}

// Empty — true, если позиций нет.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// indexOf — позиция по ключу; -1 при отсутствии.
func (c *Cart) indexOf(key LineKey) int {
	for i := range c.lines {
		if c.lines[i].Key() == key {
			return i
		}
	}
	return -1
}

// ------результаты мутаций------

// MutationStatus — исход мутации корзины.
type MutationStatus int

const (
	StatusOK MutationStatus = iota
	StatusOutOfStock
	StatusInsufficientStock
	StatusNotFound
)

// String — имя статуса для логов и метрик.
func (s MutationStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusOutOfStock:
		return "out_of_stock"
	case StatusInsufficientStock:
		return "insufficient_stock"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// MutationResult — дискриминированный результат мутации вместо паники/ошибки:
// отказ по остатку — штатный, обращённый к пользователю исход, а не исключение.
// Message показывается пользователю как есть.
type MutationResult struct {
	Status   MutationStatus
	Message  string
	Headroom int // сколько единиц ещё можно добавить (для StatusInsufficientStock)
}

// OK — успешная мутация.
func (r MutationResult) OK() bool { return r.Status == StatusOK }

func ok() MutationResult {
	return MutationResult{Status: StatusOK}
}

func outOfStock(title string) MutationResult {
	return MutationResult{
		Status:  StatusOutOfStock,
		Message: fmt.Sprintf("товар %q закончился", title),
	}
}

func insufficientStock(title string, headroom int) MutationResult {
	if headroom < 0 {
		headroom = 0
	}
	return MutationResult{
		Status:   StatusInsufficientStock,
		Message:  fmt.Sprintf("недостаточно товара %q: можно добавить ещё %d шт.", title, headroom),
		Headroom: headroom,
	}
}

func notFound(productID string) MutationResult {
	return MutationResult{
		Status:  StatusNotFound,
		Message: fmt.Sprintf("позиции %q нет в корзине", productID),
	}
}
