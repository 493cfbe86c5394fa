package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу CartCache.
var _ ports.CartCache = (*LRUCacheTTL)(nil)

type entry struct {
	key       string
	lines     []domain.CartLine
	expiresAt time.Time
}

// LRUCacheTTL — кэш гидрированных корзин: LRU-вытеснение по ёмкости + TTL.
// ttl <= 0 означает «без истечения».
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, cartKey string) ([]domain.CartLine, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[cartKey]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneLines(ent.lines), true
}

func (c *LRUCacheTTL) Set(_ context.Context, cartKey string, lines []domain.CartLine) error {
	if cartKey == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[cartKey]; ok {
		ent := elem.Value.(*entry)
		ent.lines = cloneLines(lines)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       cartKey,
		lines:     cloneLines(lines),
		expiresAt: c.expiryFrom(now),
	})
	c.index[cartKey] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Drop — убрать корзину из кэша (после clear или успешного чекаута).
func (c *LRUCacheTTL) Drop(_ context.Context, cartKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[cartKey]; ok {
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}
