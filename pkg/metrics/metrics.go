package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by operation and outcome",
		},
		[]string{"op", "status"}, // op: add|set_quantity|remove|clear; status: ok|out_of_stock|insufficient_stock|not_found
	)
	CartPersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_persist_failures_total",
			Help: "Write-through persistence failures (non-fatal)",
		},
	)
)

var (
	PushEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_events_total",
			Help: "Push events delivered to the bus",
		},
		[]string{"type"}, // stock:update|order:new|order:update
	)
	PushSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "push_subscribers",
			Help: "Number of active bus subscriptions",
		},
	)
)

var CheckoutAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout attempts by terminal state",
	},
	[]string{"result"}, // success|locally_rejected|server_rejected
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_cache_operations_total",
			Help: "Hydrated-cart cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_cache_size",
			Help: "Number of carts currently cached",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в дефолтном реестре; повторный вызов — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CartOps, CartPersistFailures,
			PushEvents, PushSubscribers,
			CheckoutAttempts,
			CacheOps, CacheSize,
		)
	})
}
