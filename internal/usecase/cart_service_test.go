package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports/mocks"
	"github.com/Gunvolt24/wb_cart/internal/usecase"
	"github.com/golang/mock/gomock"
)

const cartKey = "cart-1"

var testRules = domain.PricingRules{FreeShippingThreshold: 2500, ShippingFee: 199}

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func product(id string, stock int) domain.ProductSnapshot {
	return domain.ProductSnapshot{ID: id, Title: "товар " + id, Price: 100, Stock: domain.CapturedStock(stock)}
}

func newService(ctrl *gomock.Controller) (*usecase.CartService, *mocks.MockCartStorage, *mocks.MockCartCache) {
	storage := mocks.NewMockCartStorage(ctrl)
	cache := mocks.NewMockCartCache(ctrl)
	svc := usecase.NewCartService(storage, cache, noopLogger{}, testRules)
	return svc, storage, cache
}

func TestAddLine_CacheMiss_LoadsFromStorageAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), cartKey).Return(nil, false),
		storage.EXPECT().Load(gomock.Any(), cartKey).Return(nil, nil),
		cache.EXPECT().Set(gomock.Any(), cartKey, gomock.Nil()).Return(nil),
		cache.EXPECT().Set(gomock.Any(), cartKey, gomock.Len(1)).Return(nil),
		storage.EXPECT().Save(gomock.Any(), cartKey, gomock.Len(1)).Return(nil),
	)

	res := svc.AddLine(context.Background(), cartKey, product("p1", 5), "", 2)
	if !res.OK() {
		t.Fatalf("expected ok, got %+v", res)
	}
}

func TestAddLine_Rejected_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	existing := []domain.CartLine{{Product: product("p1", 3), Quantity: 3}}

	cache.EXPECT().Get(gomock.Any(), cartKey).Return(existing, true)
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res := svc.AddLine(context.Background(), cartKey, product("p1", 3), "", 1)
	if res.Status != domain.StatusInsufficientStock || res.Headroom != 0 {
		t.Fatalf("expected insufficient_stock with headroom 0, got %+v", res)
	}
}

func TestAddLine_SaveFails_MutationStillApplied(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), cartKey).Return(nil, true)
	cache.EXPECT().Set(gomock.Any(), cartKey, gomock.Len(1)).Return(nil)
	storage.EXPECT().Save(gomock.Any(), cartKey, gomock.Len(1)).Return(errors.New("db down"))

	res := svc.AddLine(context.Background(), cartKey, product("p1", 5), "", 1)
	if !res.OK() {
		t.Fatalf("persist failure must not fail the mutation, got %+v", res)
	}
}

func TestSetQuantity_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), cartKey).Return(nil, true)
	storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res := svc.SetQuantity(context.Background(), cartKey, "ghost", "", 2)
	if res.Status != domain.StatusNotFound {
		t.Fatalf("expected not_found, got %+v", res)
	}
}

func TestRemoveLine_ShrinksAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	existing := []domain.CartLine{
		{Product: product("p1", 5), Quantity: 1},
		{Product: product("p2", 5), Quantity: 2},
	}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), cartKey).Return(existing, true),
		cache.EXPECT().Set(gomock.Any(), cartKey, gomock.Len(1)).Return(nil),
		storage.EXPECT().Save(gomock.Any(), cartKey, gomock.Len(1)).Return(nil),
	)

	res := svc.RemoveLine(context.Background(), cartKey, "p1", "")
	if !res.OK() {
		t.Fatalf("expected ok, got %+v", res)
	}
}

func TestClear_DropsCacheAndStorage(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	gomock.InOrder(
		cache.EXPECT().Drop(gomock.Any(), cartKey),
		storage.EXPECT().Delete(gomock.Any(), cartKey).Return(nil),
	)

	svc.Clear(context.Background(), cartKey)
}

func TestHydrate_StorageError_StartsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)

	cache.EXPECT().Get(gomock.Any(), cartKey).Return(nil, false)
	storage.EXPECT().Load(gomock.Any(), cartKey).Return(nil, errors.New("db down"))

	lines := svc.Lines(context.Background(), cartKey)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart on load failure, got %d lines", len(lines))
	}
}

func TestTotals_RecomputedFromLines(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, storage, cache := newService(ctrl)
	_ = storage

	existing := []domain.CartLine{{Product: product("p1", 10), Quantity: 3}}
	cache.EXPECT().Get(gomock.Any(), cartKey).Return(existing, true)

	totals := svc.Totals(context.Background(), cartKey)
	if totals.Subtotal != 300 {
		t.Fatalf("want subtotal 300, got %d", totals.Subtotal)
	}
	if totals.ShippingCost != testRules.ShippingFee {
		t.Fatalf("want shipping %d below threshold, got %d", testRules.ShippingFee, totals.ShippingCost)
	}
}
