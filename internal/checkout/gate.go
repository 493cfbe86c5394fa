package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/internal/submit"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

// AttemptState — состояние одной попытки оформления заказа.
type AttemptState int

const (
	StateIdle AttemptState = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateLocallyRejected
	StateServerRejected
)

// String — имя состояния для логов и метрик.
func (s AttemptState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateLocallyRejected:
		return "locally_rejected"
	case StateServerRejected:
		return "server_rejected"
	default:
		return "unknown"
	}
}

// Outcome — итог попытки оформления. Message показывается пользователю
// дословно; OrderUID заполнен только при успехе.
type Outcome struct {
	State    AttemptState `json:"state"`
	OrderUID string       `json:"order_uid,omitempty"`
	Message  string       `json:"message,omitempty"`
}

// Gate — последняя сверка перед отправкой заказа: проверяет локально
// обнаружимые нарушения (пустая корзина, количество сверх захваченного
// остатка) без сетевого вызова. Гонки настоящего overselling отсюда не
// видны — их ловит только отказ авторитетной стороны при отправке.
type Gate struct {
	cart      ports.CartService
	submitter ports.OrderSubmitter
	rules     domain.PricingRules
	log       ports.Logger
}

// NewGate — DI-конструктор.
func NewGate(cart ports.CartService, submitter ports.OrderSubmitter, rules domain.PricingRules, log ports.Logger) *Gate {
	return &Gate{cart: cart, submitter: submitter, rules: rules, log: log}
}

// Attempt — один проход машины состояний
// Idle → Validating → { Submitting → Success | ServerRejected } | LocallyRejected.
// Автоповторов нет: повторная попытка — новый вызов Attempt по свежей корзине.
// При успехе корзина очищается (с персистентной очисткой).
func (g *Gate) Attempt(ctx context.Context, cartKey string, shipping domain.ShippingInfo, paymentMethod string) Outcome {
	lines := g.cart.Lines(ctx, cartKey)

	if out, ok := g.validate(lines); !ok {
		metrics.CheckoutAttempts.WithLabelValues(out.State.String()).Inc()
		g.log.Infof(ctx, "checkout locally rejected cart_key=%s reason=%s", cartKey, out.Message)
		return out
	}

	payload := g.buildPayload(lines, shipping, paymentMethod)

	if err := g.submitter.Submit(ctx, payload); err != nil {
		return g.rejected(ctx, cartKey, err)
	}

	g.cart.Clear(ctx, cartKey)
	metrics.CheckoutAttempts.WithLabelValues(StateSuccess.String()).Inc()
	g.log.Infof(ctx, "checkout succeeded cart_key=%s order_uid=%s", cartKey, payload.OrderUID)

	return Outcome{State: StateSuccess, OrderUID: payload.OrderUID}
}

// validate — локальная сверка: пустая корзина и позиции, чьё количество
// превышает захваченный остаток. Необходимая, но не достаточная проверка.
func (g *Gate) validate(lines []domain.CartLine) (Outcome, bool) {
	if len(lines) == 0 {
		return Outcome{State: StateLocallyRejected, Message: "корзина пуста"}, false
	}

	for i := range lines {
		if lines[i].Quantity > int(lines[i].Product.Stock) {
			return Outcome{
				State: StateLocallyRejected,
				Message: fmt.Sprintf("товара %q осталось %d шт., в корзине %d",
					lines[i].Product.Title, lines[i].Product.Stock, lines[i].Quantity),
			}, false
		}
	}

	return Outcome{}, true
}

// buildPayload — собирает заказ из уже прочитанных позиций. Сумма считается
// по тому же срезу, что и items: повторная гидратация корзины могла бы дать
// состояние, разъехавшееся с позициями при конкурентной мутации.
func (g *Gate) buildPayload(lines []domain.CartLine, shipping domain.ShippingInfo, paymentMethod string) domain.OrderPayload {
	items := make([]domain.OrderItem, 0, len(lines))
	for i := range lines {
		items = append(items, domain.OrderItem{
			ProductID: lines[i].Product.ID,
			Title:     lines[i].Product.Title,
			Price:     lines[i].Product.Price,
			Quantity:  lines[i].Quantity,
			Variant:   lines[i].Variant,
		})
	}

	return domain.OrderPayload{
		OrderUID:      uuid.NewString(),
		Items:         items,
		TotalPrice:    domain.NewCart(lines).Totals(g.rules).GrandTotal,
		ShippingInfo:  shipping,
		PaymentMethod: paymentMethod,
	}
}

// rejected — отказ при отправке: текст авторитетной стороны — дословно,
// сбой транспорта — обобщённая формулировка без деталей.
func (g *Gate) rejected(ctx context.Context, cartKey string, err error) Outcome {
	metrics.CheckoutAttempts.WithLabelValues(StateServerRejected.String()).Inc()
	g.log.Warnf(ctx, "checkout rejected cart_key=%s err=%v", cartKey, err)

	var srvErr *submit.ServerRejectedError
	if errors.As(err, &srvErr) {
		return Outcome{State: StateServerRejected, Message: srvErr.Message}
	}

	return Outcome{State: StateServerRejected, Message: "не удалось оформить заказ, попробуйте ещё раз"}
}
