package livestock_test

import (
	"testing"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/livestock"
	"github.com/Gunvolt24/wb_cart/internal/pubsub"
)

func publishStock(b *pubsub.Bus, productID string, newStock int, cause string) {
	b.Publish(domain.PushEvent{
		Type:  domain.EventStockUpdate,
		Stock: &domain.StockEvent{ProductID: productID, NewStock: newStock, Cause: cause},
	})
}

func TestReconciler_AppliesDeltaToTrackedProduct(t *testing.T) {
	b := pubsub.NewBus()

	var changed []string
	r := livestock.NewReconciler("grid", b, func(id string, _ domain.ObservedStock, _ string) {
		changed = append(changed, id)
	}, nil)
	defer r.Close()

	r.Track("A", "B")

	publishStock(b, "A", 7, "sale")

	got, ok := r.Observed("A")
	if !ok || got != 7 {
		t.Fatalf("want observed 7 for A, got %v ok=%v", got, ok)
	}
	if len(changed) != 1 || changed[0] != "A" {
		t.Fatalf("expected one re-render for A, got %v", changed)
	}
}

// Событие по неотображаемому товару игнорируется.
func TestReconciler_IgnoresUntrackedProduct(t *testing.T) {
	b := pubsub.NewBus()

	r := livestock.NewReconciler("detail", b, nil, nil)
	defer r.Close()

	r.Track("A")
	publishStock(b, "Z", 3, "")

	if _, ok := r.Observed("Z"); ok {
		t.Fatalf("untracked product must not enter the cache")
	}
}

// Последнее пришедшее событие авторитетно (last-write-wins).
func TestReconciler_LastWriteWins(t *testing.T) {
	b := pubsub.NewBus()

	r := livestock.NewReconciler("grid", b, nil, nil)
	defer r.Close()

	r.Track("A")
	publishStock(b, "A", 5, "")
	publishStock(b, "A", 2, "")
	publishStock(b, "A", 4, "restock")

	got, _ := r.Observed("A")
	if got != 4 {
		t.Fatalf("want last observed stock 4, got %v", got)
	}
}

// Две поверхности не разделяют кэш: у каждой своя копия.
func TestReconciler_SurfacesAreIndependent(t *testing.T) {
	b := pubsub.NewBus()

	grid := livestock.NewReconciler("grid", b, nil, nil)
	defer grid.Close()
	cartView := livestock.NewReconciler("cart", b, nil, nil)
	defer cartView.Close()

	grid.Track("A")
	// корзинная поверхность товар A не отображает

	publishStock(b, "A", 1, "")

	if _, ok := grid.Observed("A"); !ok {
		t.Fatalf("grid must observe A")
	}
	if _, ok := cartView.Observed("A"); ok {
		t.Fatalf("cart surface must not observe A")
	}
}

// order:* — сигнал «перечитать целиком», не инкрементальная дельта.
func TestReconciler_OrderEventsTriggerRefetch(t *testing.T) {
	b := pubsub.NewBus()

	var refetches []domain.EventType
	r := livestock.NewReconciler("admin", b, nil, func(t domain.EventType) {
		refetches = append(refetches, t)
	})
	defer r.Close()

	b.Publish(domain.PushEvent{Type: domain.EventOrderNew})
	b.Publish(domain.PushEvent{Type: domain.EventOrderUpdate})

	if len(refetches) != 2 || refetches[0] != domain.EventOrderNew || refetches[1] != domain.EventOrderUpdate {
		t.Fatalf("expected refetch for both order events, got %v", refetches)
	}
}

// После Close события не доставляются.
func TestReconciler_CloseUnsubscribes(t *testing.T) {
	b := pubsub.NewBus()

	calls := 0
	r := livestock.NewReconciler("grid", b, func(string, domain.ObservedStock, string) { calls++ }, nil)
	r.Track("A")

	publishStock(b, "A", 5, "")
	r.Close()
	r.Close() // повторный Close безопасен
	publishStock(b, "A", 1, "")

	if calls != 1 {
		t.Fatalf("expected 1 re-render before Close, got %d", calls)
	}
}
