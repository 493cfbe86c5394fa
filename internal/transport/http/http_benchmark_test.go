//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/wb_cart/internal/domain"
)

// --- Бенчмарки ---

// Базовый бенч: GET /cart — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetCart(b *testing.B) {
	h := NewHandler(svcFixed{lines: benchLines(3)}, nil, nil, nopLogger{})

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/cart/bench-cart")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/cart/bench-cart")
	})
}

// Потолок без маршалинга: та же корзина, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_GetCart_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(cartView{Lines: benchLines(3)})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/cart/:key", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/cart/bench-cart")
}

// Размер корзины: 1/10/50 позиций — рост аллокаций и времени на маршалинге
func BenchmarkHTTP_GetCart_BySize(b *testing.B) {
	for _, n := range []int{1, 10, 50} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := NewHandler(svcFixed{lines: benchLines(n)}, nil, nil, nopLogger{})
			benchServeGET(b, makeLeanRouter(h), "/cart/bench-cart")
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(svcFixed{}, nil, nil, nopLogger{})
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

// svcFixed — сервис с заранее подготовленной корзиной (без аллокаций на каждом вызове).
type svcFixed struct{ lines []domain.CartLine }

func (s svcFixed) AddLine(context.Context, string, domain.ProductSnapshot, string, int) domain.MutationResult {
	return domain.MutationResult{Status: domain.StatusOK}
}
func (s svcFixed) SetQuantity(context.Context, string, string, string, int) domain.MutationResult {
	return domain.MutationResult{Status: domain.StatusOK}
}
func (s svcFixed) RemoveLine(context.Context, string, string, string) domain.MutationResult {
	return domain.MutationResult{Status: domain.StatusOK}
}
func (s svcFixed) Clear(context.Context, string) {}
func (s svcFixed) Lines(context.Context, string) []domain.CartLine {
	return s.lines
}
func (s svcFixed) QuantityOf(context.Context, string, string, string) int { return 1 }
func (s svcFixed) Totals(context.Context, string) domain.Totals {
	return domain.Totals{Subtotal: 300, ShippingCost: 199, GrandTotal: 499}
}

func benchLines(n int) []domain.CartLine {
	lines := make([]domain.CartLine, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, domain.CartLine{
			Product: domain.ProductSnapshot{
				ID:    "bench-prod-" + strconv.Itoa(i),
				Title: "Widget " + strconv.Itoa(i),
				Price: 100,
				Stock: 10,
			},
			Quantity: 1,
		})
	}
	return lines
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.GET("/cart/:key", h.getCart)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
