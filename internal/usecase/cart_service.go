package usecase

import (
	"context"
	"sync"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

// Проверка, что CartService удовлетворяет порту CartService.
var _ ports.CartService = (*CartService)(nil)

// CartService — прикладная логика корзины (без знаний о транспорте).
// Каждая мутация: гидрация (кэш → хранилище → пустая корзина), применение
// доменной операции, сквозная запись в хранилище. Сбой записи не фатален:
// авторитетно состояние в памяти (кэше), следующая мутация повторит запись.
type CartService struct {
	storage ports.CartStorage // прямой доступ к хранилищу
	cache   ports.CartCache   // прямой доступ к кэшу
	log     ports.Logger      // прямой доступ к логгеру
	rules   domain.PricingRules

	// Мутации сериализуются: модель обработки — одна логическая нить,
	// «конкурентность» здесь — чередование независимых событий.
	mu sync.Mutex
}

// NewCartService — DI-конструктор.
func NewCartService(
	storage ports.CartStorage,
	cache ports.CartCache,
	log ports.Logger,
	rules domain.PricingRules,
) *CartService {
	return &CartService{
		storage: storage,
		cache:   cache,
		log:     log,
		rules:   rules,
	}
}

// AddLine — добавить товар (снимок захватывается при первом добавлении).
func (s *CartService) AddLine(ctx context.Context, cartKey string, product domain.ProductSnapshot, variant string, qty int) domain.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.hydrate(ctx, cartKey)
	res := cart.AddLine(product, variant, qty)
	s.finishMutation(ctx, cartKey, "add", cart, res)
	return res
}

// SetQuantity — установить количество позиции (меньше 1 — удаление).
func (s *CartService) SetQuantity(ctx context.Context, cartKey, productID, variant string, newQty int) domain.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.hydrate(ctx, cartKey)
	res := cart.SetQuantity(productID, variant, newQty)
	s.finishMutation(ctx, cartKey, "set_quantity", cart, res)
	return res
}

// RemoveLine — удалить позицию; идемпотентно.
func (s *CartService) RemoveLine(ctx context.Context, cartKey, productID, variant string) domain.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.hydrate(ctx, cartKey)
	res := cart.RemoveLine(productID, variant)
	s.finishMutation(ctx, cartKey, "remove", cart, res)
	return res
}

// Clear — опустошить корзину и хранилище (не только память),
// чтобы перезагрузка не воскресила устаревшую корзину.
func (s *CartService) Clear(ctx context.Context, cartKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Drop(ctx, cartKey)
	if err := s.storage.Delete(ctx, cartKey); err != nil {
		metrics.CartPersistFailures.Inc()
		s.log.Warnf(ctx, "storage.Delete failed cart_key=%s err=%v", cartKey, err)
	}
	metrics.CartOps.WithLabelValues("clear", "ok").Inc()
	s.log.Infof(ctx, "cart cleared cart_key=%s", cartKey)
}

// Lines — текущие позиции в порядке вставки.
func (s *CartService) Lines(ctx context.Context, cartKey string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate(ctx, cartKey).Lines()
}

// QuantityOf — количество по ключу позиции; 0 при отсутствии.
func (s *CartService) QuantityOf(ctx context.Context, cartKey, productID, variant string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate(ctx, cartKey).QuantityOf(productID, variant)
}

// Totals — суммы корзины; пересчёт при каждом вызове, без кэширования.
func (s *CartService) Totals(ctx context.Context, cartKey string) domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate(ctx, cartKey).Totals(s.rules)
}

// hydrate — корзина по ключу: кэш, при промахе — хранилище с записью в кэш.
// Ошибка чтения хранилища не фатальна: начинаем с пустой корзины.
func (s *CartService) hydrate(ctx context.Context, cartKey string) *domain.Cart {
	if cartLines, found := s.cache.Get(ctx, cartKey); found {
		return domain.NewCart(cartLines)
	}

	cartLines, err := s.storage.Load(ctx, cartKey)
	if err != nil {
		s.log.Errorf(ctx, "storage.Load failed cart_key=%s err=%v", cartKey, err)
		return domain.NewCart(nil)
	}

	if setErr := s.cache.Set(ctx, cartKey, cartLines); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed cart_key=%s err=%v", cartKey, setErr)
	}
	return domain.NewCart(cartLines)
}

// finishMutation — метрика, сквозная запись и лог для завершённой мутации.
// Отказ по остатку — штатный исход: состояние не менялось, записывать нечего.
func (s *CartService) finishMutation(ctx context.Context, cartKey, op string, cart *domain.Cart, res domain.MutationResult) {
	metrics.CartOps.WithLabelValues(op, res.Status.String()).Inc()

	if !res.OK() {
		s.log.Infof(ctx, "cart mutation rejected op=%s cart_key=%s status=%s", op, cartKey, res.Status)
		return
	}

	cartLines := cart.Lines()
	if setErr := s.cache.Set(ctx, cartKey, cartLines); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed cart_key=%s err=%v", cartKey, setErr)
	}
	if err := s.storage.Save(ctx, cartKey, cartLines); err != nil {
		// Не фатально: память авторитетна, следующая мутация повторит запись.
		metrics.CartPersistFailures.Inc()
		s.log.Warnf(ctx, "storage.Save failed cart_key=%s err=%v", cartKey, err)
	}

	s.log.Infof(ctx, "cart mutation applied op=%s cart_key=%s lines=%d", op, cartKey, len(cartLines))
}
