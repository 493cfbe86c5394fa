package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/wb_cart/config"
	cachemem "github.com/Gunvolt24/wb_cart/internal/cache/memory"
	"github.com/Gunvolt24/wb_cart/internal/checkout"
	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/kafka"
	"github.com/Gunvolt24/wb_cart/internal/livestock"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/internal/pubsub"
	"github.com/Gunvolt24/wb_cart/internal/repo/postgres"
	"github.com/Gunvolt24/wb_cart/internal/submit"
	rest "github.com/Gunvolt24/wb_cart/internal/transport/http"
	"github.com/Gunvolt24/wb_cart/internal/usecase"
	"github.com/Gunvolt24/wb_cart/pkg/logger"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
	"github.com/Gunvolt24/wb_cart/pkg/telemetry"
	"github.com/Gunvolt24/wb_cart/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // основной HTTP-сервер
	MetricsServer   *http.Server          // отдельный слушатель /metrics
	KafkaConsumer   ports.MessageConsumer // консьюмер push-событий
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Environment, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	rules := domain.PricingRules{
		FreeShippingThreshold: cfg.Cart.FreeShippingThreshold,
		ShippingFee:           cfg.Cart.ShippingFee,
	}
	cartCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	cartStorage := postgres.NewCartStorage(pool)
	cartService := usecase.NewCartService(cartStorage, cartCache, logg, rules)

	// Push-канал: шина + каталог как поверхность чтения живого остатка.
	bus := pubsub.NewBus()
	catalog := livestock.NewReconciler("catalog", bus,
		func(productID string, stock domain.ObservedStock, cause string) {
			logg.Infof(ctx, "live stock changed surface=catalog product_id=%s observed=%d cause=%s", productID, stock, cause)
		},
		func(eventType domain.EventType) {
			logg.Infof(ctx, "refetch requested surface=catalog event=%s", eventType)
		},
	)

	// Чекаут: шлюз + исходящая отправка заказов.
	submitter := submit.NewHTTPSubmitter(cfg.Checkout.SubmitURL, cfg.Checkout.SubmitTimeout)
	gate := checkout.NewGate(cartService, submitter, rules, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-серверы.
	httpHandler := rest.NewHandler(cartService, gate, catalog, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsMux,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	// Конфигурация и создание консьюмера Kafka.
	ingest := usecase.NewEventIngest(bus, validate.NewStockEventValidator(), logg)
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, ingest, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}

		catalog.Close()
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Запуск слушателя метрик (если сконфигурирован).
	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-консьюмера
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
