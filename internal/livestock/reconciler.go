package livestock

import (
	"sync"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
)

// ChangeFunc — хук перерисовки: вызывается после обновления живого остатка
// товара, отображаемого на поверхности.
type ChangeFunc func(productID string, stock domain.ObservedStock, cause string)

// RefetchFunc — хук полной перезагрузки данных поверхности. Вызывается на
// order:new / order:update: это сигналы «инвалидировать и перечитать»,
// данных для инкрементального слияния они не несут.
type RefetchFunc func(eventType domain.EventType)

// Reconciler — согласователь живого остатка одной поверхности отображения
// (сетка каталога, карточка товара, корзина). Владеет ровно одним Cache,
// применяет дельты только к товарам, отображаемым сейчас, и никогда не
// проталкивает обновления в снимки корзины: расхождение снимка и живого
// остатка разрешает только Checkout Gate.
type Reconciler struct {
	surface string
	cache   *Cache

	mu       sync.Mutex
	rendered map[string]struct{}

	onChange  ChangeFunc
	onRefetch RefetchFunc

	unsubStock  ports.Unsubscribe
	unsubOrders []ports.Unsubscribe
	closeOnce   sync.Once
}

// NewReconciler — подписывается на шину при создании; снятие подписок — Close.
// onChange и onRefetch могут быть nil, если поверхности не нужна перерисовка.
func NewReconciler(surface string, events ports.StockEvents, onChange ChangeFunc, onRefetch RefetchFunc) *Reconciler {
	r := &Reconciler{
		surface:   surface,
		cache:     NewCache(),
		rendered:  make(map[string]struct{}),
		onChange:  onChange,
		onRefetch: onRefetch,
	}

	r.unsubStock = events.Subscribe(domain.EventStockUpdate, r.handleStock)
	for _, t := range []domain.EventType{domain.EventOrderNew, domain.EventOrderUpdate} {
		r.unsubOrders = append(r.unsubOrders, events.Subscribe(t, r.handleOrder))
	}
	return r
}

// Surface — имя поверхности (для логов).
func (r *Reconciler) Surface() string { return r.surface }

// Track — отметить товар как отображаемый на поверхности.
func (r *Reconciler) Track(productIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range productIDs {
		r.rendered[id] = struct{}{}
	}
}

// Untrack — товар больше не отображается; наблюдавшийся остаток остаётся в кэше.
func (r *Reconciler) Untrack(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rendered, productID)
}

// Observed — последний наблюдавшийся остаток товара на этой поверхности.
func (r *Reconciler) Observed(productID string) (domain.ObservedStock, bool) {
	return r.cache.Get(productID)
}

// Close — снимает подписки; повторный вызов безопасен.
func (r *Reconciler) Close() {
	r.closeOnce.Do(func() {
		r.unsubStock()
		for _, u := range r.unsubOrders {
			u()
		}
	})
}

// handleStock — дельта остатка: перезаписываем кэш и дёргаем перерисовку,
// только если товар сейчас отображается.
func (r *Reconciler) handleStock(e domain.PushEvent) {
	if e.Stock == nil {
		return
	}

	r.mu.Lock()
	_, shown := r.rendered[e.Stock.ProductID]
	r.mu.Unlock()
	if !shown {
		return
	}

	stock := domain.ObservedStock(e.Stock.NewStock)
	r.cache.Apply(e.Stock.ProductID, stock)

	if r.onChange != nil {
		r.onChange(e.Stock.ProductID, stock, e.Stock.Cause)
	}
}

func (r *Reconciler) handleOrder(e domain.PushEvent) {
	if r.onRefetch != nil {
		r.onRefetch(e.Type)
	}
}
