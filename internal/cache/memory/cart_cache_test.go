package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

func lines(productID string, qty int) []domain.CartLine {
	return []domain.CartLine{{
		Product:  domain.ProductSnapshot{ID: productID, Title: "x", Price: 100, Stock: 10},
		Quantity: qty,
	}}
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "cart-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, "cart-1", lines("A", 1))
	got, ok := c.Get(ctx, "cart-1")
	if !ok || len(got) != 1 || got[0].Product.ID != "A" {
		t.Fatalf("expected hit for cart-1, got %v ok=%v", got, ok)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, "ttl", lines("A", 1))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, "A", lines("a", 1))
	_ = c.Set(ctx, "B", lines("b", 1))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, "C", lines("c", 1))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestDrop_RemovesEntry(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, "A", lines("a", 1))
	c.Drop(ctx, "A")
	c.Drop(ctx, "A") // повторный Drop — no-op

	if _, ok := c.Get(ctx, "A"); ok {
		t.Fatalf("expected miss after Drop")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()

	orig := lines("Z", 1)
	_ = c.Set(ctx, "Z", orig)

	// меняем то, что вернул Get — не должно влиять на кэш
	got1, _ := c.Get(ctx, "Z")
	got1[0].Quantity = 99

	got2, _ := c.Get(ctx, "Z")
	if got2[0].Quantity != 1 {
		t.Fatalf("cache content mutated through Get result: %v", got2)
	}
}
