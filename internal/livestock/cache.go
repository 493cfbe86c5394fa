package livestock

import (
	"sync"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// Cache — живой остаток по товарам одной поверхности отображения.
// Записи создаются лениво при первом событии и живут, пока жива поверхность;
// никакой персистентности. Каждая поверхность владеет своей копией —
// межповерхностной синхронизации нет, общий только источник событий.
type Cache struct {
	mu       sync.RWMutex
	observed map[string]domain.ObservedStock
}

// NewCache — пустой кэш.
func NewCache() *Cache {
	return &Cache{observed: make(map[string]domain.ObservedStock)}
}

// Apply — безусловная перезапись остатка товара (last-write-wins по порядку прихода).
func (c *Cache) Apply(productID string, stock domain.ObservedStock) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observed[productID] = stock
}

// Get — последний наблюдавшийся остаток; (0, false), если событий по товару не было.
func (c *Cache) Get(productID string) (domain.ObservedStock, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.observed[productID]
	return s, ok
}

// Len — количество товаров с наблюдавшимся остатком.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.observed)
}
