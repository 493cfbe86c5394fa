package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_cart/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestCartOps_CountersByLabels(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "ok"))
	rejBefore := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "insufficient_stock"))

	metrics.CartOps.WithLabelValues("add", "ok").Inc()
	metrics.CartOps.WithLabelValues("add", "ok").Inc()
	metrics.CartOps.WithLabelValues("add", "insufficient_stock").Inc()

	if got := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "ok")); got != okBefore+2 {
		t.Fatalf("CartOps(add,ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add", "insufficient_stock")); got != rejBefore+1 {
		t.Fatalf("CartOps(add,insufficient_stock): got=%v want=%v", got, rejBefore+1)
	}
}

func TestPushEvents_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.PushEvents.WithLabelValues("stock:update"))
	metrics.PushEvents.WithLabelValues("stock:update").Inc()

	if got := testutil.ToFloat64(metrics.PushEvents.WithLabelValues("stock:update")); got != before+1 {
		t.Fatalf("PushEvents(stock:update): got=%v want=%v", got, before+1)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 3)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+3 {
		t.Fatalf("CacheSize after +3: got=%v want=%v", got, cur+3)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
