package domain

// EventType — именованный тип push-события.
type EventType string

const (
	// EventStockUpdate — дельта остатка; несёт данные, применяется инкрементально.
	EventStockUpdate EventType = "stock:update"

	// EventOrderNew и EventOrderUpdate — сигналы жизненного цикла заказа.
	// Данных не несут: подписчик должен инвалидировать и перечитать состояние целиком,
	// а не сливать дельту.
	EventOrderNew    EventType = "order:new"
	EventOrderUpdate EventType = "order:update"
)

// StockEvent — push-дельта остатка товара.
// Cause — подсказка для текста на витрине («распродано», «возврат»);
// для решений о корректности не используется.
type StockEvent struct {
	ProductID     string `json:"product_id"`
	NewStock      int    `json:"new_stock"`
	Cause         string `json:"cause,omitempty"`
	ItemsSold     int    `json:"items_sold,omitempty"`
	ItemsRestored int    `json:"items_restored,omitempty"`
}

// PushEvent — событие, доставленное слушателем push-канала.
// Stock заполнен только для EventStockUpdate.
type PushEvent struct {
	Type  EventType
	Stock *StockEvent
}
