//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// UniqCartKey — уникальный ключ корзины для изоляции тестов.
func UniqCartKey() string { return "cart-" + UniqSuffix() }

// MakeProduct — мини-генератор снимка товара.
func MakeProduct(opts ...func(*domain.ProductSnapshot)) domain.ProductSnapshot {
	p := domain.ProductSnapshot{
		ID:    "prod-" + UniqSuffix(),
		Title: "Widget",
		Price: 100,
		Image: "https://img.example/widget.png",
		Stock: 10,
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithStock(stock domain.CapturedStock) func(*domain.ProductSnapshot) {
	return func(p *domain.ProductSnapshot) { p.Stock = stock }
}

func WithPrice(price int) func(*domain.ProductSnapshot) {
	return func(p *domain.ProductSnapshot) { p.Price = price }
}

// MakeLines — позиции корзины: n разных товаров по одной штуке.
func MakeLines(n int) []domain.CartLine {
	cartLines := make([]domain.CartLine, 0, n)
	for i := 0; i < n; i++ {
		cartLines = append(cartLines, domain.CartLine{
			Product:  MakeProduct(WithPrice(10 * (i + 1))),
			Quantity: 1,
		})
	}
	return cartLines
}

// MakeStockEvent — валидное push-событие об остатке.
func MakeStockEvent(productID string, newStock int) domain.StockEvent {
	return domain.StockEvent{
		ProductID: productID,
		NewStock:  newStock,
		Cause:     "sale",
		ItemsSold: 1,
	}
}
