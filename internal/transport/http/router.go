package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wb_cart/internal/checkout"
	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/livestock"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_cart/pkg/httpx"
)

// maxQty — верхняя граница количества в одном запросе; реальная проверка
// остатка происходит в доменном слое.
const maxQty = 999

type Handler struct {
	service ports.CartService
	gate    *checkout.Gate
	catalog *livestock.Reconciler // витрина каталога как HTTP-поверхность чтения
	log     ports.Logger
}

func NewHandler(service ports.CartService, gate *checkout.Gate, catalog *livestock.Reconciler, log ports.Logger) *Handler {
	return &Handler{service: service, gate: gate, catalog: catalog, log: log}
}

// NewRouter — маршруты сервиса. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cart := r.Group("/cart/:key", cartKeyMiddleware())
	cart.GET("", h.getCart)
	cart.DELETE("", h.clearCart)
	cart.POST("/items", h.addItem)
	cart.PUT("/items/:product_id", h.setQuantity)
	cart.DELETE("/items/:product_id", h.removeItem)
	cart.POST("/checkout", h.checkout)

	r.GET("/stock/:product_id", h.observedStock)

	return r
}

// cartKeyMiddleware — кладёт ключ корзины в контекст запроса, чтобы логи
// downstream-слоёв несли cart_key.
func cartKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.Param("key"); key != "" {
			ctx := ctxmeta.WithCartKey(c.Request.Context(), key)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// cartView — состояние корзины в ответах.
type cartView struct {
	Lines  []domain.CartLine `json:"lines"`
	Totals domain.Totals     `json:"totals"`
}

// mutationView — исход мутации + новое состояние корзины.
type mutationView struct {
	Status   string   `json:"status"`
	Message  string   `json:"message,omitempty"`
	Headroom int      `json:"headroom,omitempty"`
	Cart     cartView `json:"cart"`
}

func (h *Handler) view(c *gin.Context, cartKey string) cartView {
	ctx := c.Request.Context()
	return cartView{
		Lines:  h.service.Lines(ctx, cartKey),
		Totals: h.service.Totals(ctx, cartKey),
	}
}

// respondMutation — код ответа по статусу мутации: отказ по остатку — 409,
// отсутствующая позиция — 404. Message отдаётся дословно.
func (h *Handler) respondMutation(c *gin.Context, cartKey string, res domain.MutationResult) {
	code := http.StatusOK
	switch res.Status {
	case domain.StatusOutOfStock, domain.StatusInsufficientStock:
		code = http.StatusConflict
	case domain.StatusNotFound:
		code = http.StatusNotFound
	}

	c.JSON(code, mutationView{
		Status:   res.Status.String(),
		Message:  res.Message,
		Headroom: res.Headroom,
		Cart:     h.view(c, cartKey),
	})
}

func (h *Handler) getCart(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty cart key"})
		return
	}
	c.JSON(http.StatusOK, h.view(c, key))
}

func (h *Handler) clearCart(c *gin.Context) {
	key := c.Param("key")
	h.service.Clear(c.Request.Context(), key)
	c.JSON(http.StatusOK, h.view(c, key))
}

// addItemRequest — тело добавления: полный снимок карточки товара,
// каким его видела витрина в момент действия.
type addItemRequest struct {
	Product  domain.ProductSnapshot `json:"product"`
	Variant  string                 `json:"variant"`
	Quantity int                    `json:"quantity"`
}

func (h *Handler) addItem(c *gin.Context) {
	key := c.Param("key")

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product id"})
		return
	}
	if req.Product.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "negative stock_at_capture"})
		return
	}

	// Та же верхняя граница, что и у query-параметра qty.
	qty := httpx.ClampInt(req.Quantity, 1, maxQty)

	res := h.service.AddLine(c.Request.Context(), key, req.Product, req.Variant, qty)
	h.respondMutation(c, key, res)
}

func (h *Handler) setQuantity(c *gin.Context) {
	key := c.Param("key")
	productID := c.Param("product_id")
	variant := httpx.ParseVariant(c)
	qty := httpx.ParseQuantity(c, 1, maxQty)

	res := h.service.SetQuantity(c.Request.Context(), key, productID, variant, qty)
	h.respondMutation(c, key, res)
}

func (h *Handler) removeItem(c *gin.Context) {
	key := c.Param("key")
	productID := c.Param("product_id")
	variant := httpx.ParseVariant(c)

	res := h.service.RemoveLine(c.Request.Context(), key, productID, variant)
	h.respondMutation(c, key, res)
}

// checkoutRequest — данные шага оформления.
type checkoutRequest struct {
	ShippingInfo  domain.ShippingInfo `json:"shippingInfo"`
	PaymentMethod string              `json:"paymentMethod"`
}

func (h *Handler) checkout(c *gin.Context) {
	key := c.Param("key")

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	out := h.gate.Attempt(c.Request.Context(), key, req.ShippingInfo, req.PaymentMethod)

	code := http.StatusOK
	switch out.State {
	case checkout.StateLocallyRejected:
		code = http.StatusConflict
	case checkout.StateServerRejected:
		code = http.StatusBadGateway
	}
	c.JSON(code, out)
}

// observedStock — наблюдаемый остаток с витрины каталога. Чтение трекает
// товар: с этого момента push-дельты по нему применяются к кэшу поверхности.
func (h *Handler) observedStock(c *gin.Context) {
	productID := c.Param("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product id"})
		return
	}

	h.catalog.Track(productID)

	stock, ok := h.catalog.Observed(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no observation yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "observed_stock": stock})
}
