package entity

import "github.com/shopspring/decimal"

// Estados de pedido usados por el backend.
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusCompleted = "Completed"
)

// Order pedido con nombres de campo canónicos (el backend alterna OrderID/orderId, etc.).
type Order struct {
	OrderID     string          `json:"orderId"`
	OrderDate   string          `json:"orderDate"`
	ShopID      string          `json:"shopId"`
	StaffID     string          `json:"staffId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	ProofLink   string          `json:"proofLink,omitempty"`
}

// Completed true para Delivered o Completed.
func (o Order) Completed() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCompleted
}

// OrderList pedidos del día (GET /webhook/Today-Order).
type OrderList struct {
	Summary OrderSummary `json:"summary"`
	Orders  []Order      `json:"orders"`
}

type OrderSummary struct {
	TotalOrders        Count           `json:"totalOrders"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	UniqueShops        Count           `json:"uniqueShops"`
	UniqueStaffMembers Count           `json:"uniqueStaffMembers"`
}

// StaffOrderList historial de un vendedor (GET /webhook/sales-id-order?staffId=).
type StaffOrderList struct {
	Stats  StaffOrderStats `json:"stats"`
	Orders []Order         `json:"orders"`
}

type StaffOrderStats struct {
	TotalOrders       Count           `json:"totalOrders"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	PendingOrders     Count           `json:"pendingOrders"`
	CompletedOrders   Count           `json:"completedOrders"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// OrderDetails detalle de un pedido para el formulario de entrega (GET /webhook/Order-Details).
type OrderDetails struct {
	Order    OrderHeader    `json:"order"`
	Products []OrderProduct `json:"products"`
}

type OrderHeader struct {
	OrderID     string          `json:"order_id"`
	ShopID      string          `json:"shop_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    Count  `json:"quantity"`
}
