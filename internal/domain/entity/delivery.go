package entity

import "github.com/shopspring/decimal"

// Estados de entrega.
const (
	DeliveryStatusDelivered     = "Delivered"
	DeliveryStatusPartialReturn = "Partial Return"
	DeliveryStatusFullyReturned = "Fully Returned"
	DeliveryStatusFailed        = "Failed"
)

// ValidDeliveryStatus indica si s es un estado de entrega conocido.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryStatusDelivered, DeliveryStatusPartialReturn, DeliveryStatusFullyReturned, DeliveryStatusFailed:
		return true
	}
	return false
}

// Acciones sobre un ítem devuelto.
const (
	ReturnActionRestock = "Restock"
	ReturnActionDiscard = "Discard"
)

// Delivery actualización de entrega registrada por un rider.
type Delivery struct {
	ID           string          `json:"id"`
	ShopID       string          `json:"shop_id"`
	OrderID      string          `json:"order_id"`
	CashReceived decimal.Decimal `json:"cash_received"`
	Status       string          `json:"status"`
	ReturnItems  []ReturnItem    `json:"return_items"`
	RiderID      string          `json:"rider_id"`
	RiderName    string          `json:"rider_name"`
	Timestamp    string          `json:"timestamp"`
	DisplayTime  string          `json:"display_time,omitempty"`
}

type ReturnItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Qty         Count  `json:"qty"`
	Reason      string `json:"reason"`
	Action      string `json:"action"`
}

// DeliveryList entregas con estadísticas derivadas (GET /webhook/all-delivery y Dilivery-History).
type DeliveryList struct {
	Stats      DeliveryStats `json:"stats"`
	Deliveries []Delivery    `json:"deliveries"`
}

type DeliveryStats struct {
	Total         Count           `json:"total"`
	Delivered     Count           `json:"delivered"`
	PartialReturn Count           `json:"partialReturn"`
	FullyReturned Count           `json:"fullyReturned"`
	Failed        Count           `json:"failed"`
	TotalCash     decimal.Decimal `json:"totalCash"`
	ReturnsCount  Count           `json:"returnsCount"`
}
