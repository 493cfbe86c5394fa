package domain

// OrderItem — позиция исходящего заказа (wire-формат чекаута).
type OrderItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
}

// ShippingInfo — данные доставки, заполняются пользователем на шаге чекаута.
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Zip     string `json:"zip,omitempty"`
}

// OrderPayload — тело запроса на оформление заказа.
// Формат согласован с принимающей стороной: ответ — либо непрозрачное
// подтверждение, либо структурированный отказ, текст которого показывается
// пользователю дословно.
type OrderPayload struct {
	OrderUID      string       `json:"orderUid"`
	Items         []OrderItem  `json:"items"`
	TotalPrice    int          `json:"totalPrice"`
	ShippingInfo  ShippingInfo `json:"shippingInfo"`
	PaymentMethod string       `json:"paymentMethod"`
}
