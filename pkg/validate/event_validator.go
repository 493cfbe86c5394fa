package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

// Проверка, что StockEventValidator удовлетворяет интерфейсу EventValidator.
var _ ports.EventValidator = (*StockEventValidator)(nil)

// ErrInvalidEvent — базовая (sentinel error) ошибка валидации push-события.
var ErrInvalidEvent = errors.New("stock event validation failed")

// StockEventValidator — структура для валидации событий об остатке.
// Возвращает ErrInvalidEvent (с обёрнутой причиной) при любой проблеме.
type StockEventValidator struct{}

// NewStockEventValidator — конструктор StockEventValidator.
func NewStockEventValidator() *StockEventValidator { return &StockEventValidator{} }

// Validate — проверяет корректность полей события.
// Cause не проверяется: это непрозрачная подсказка для витрины.
func (v *StockEventValidator) Validate(_ context.Context, event *domain.StockEvent) error {
	if event == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if event.ProductID == "" {
		return fmt.Errorf("%w: product_id обязателен", ErrInvalidEvent)
	}
	if event.NewStock < 0 {
		return fmt.Errorf("%w: new_stock должен быть неотрицательным", ErrInvalidEvent)
	}
	if event.ItemsSold < 0 {
		return fmt.Errorf("%w: items_sold должен быть неотрицательным", ErrInvalidEvent)
	}
	if event.ItemsRestored < 0 {
		return fmt.Errorf("%w: items_restored должен быть неотрицательным", ErrInvalidEvent)
	}
	return nil
}
