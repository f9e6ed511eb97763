package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// AddOrderItemRequest agrega (o suma) un producto al borrador de pedido.
type AddOrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// SetQuantityRequest cambia la cantidad de una línea.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

// SelectShopRequest elige la tienda del pedido.
type SelectShopRequest struct {
	ShopID string `json:"shopId" validate:"required"`
}

// OrderLineResponse línea del borrador con su total.
type OrderLineResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderDraftResponse borrador de pedido.
type OrderDraftResponse struct {
	ShopID      string              `json:"shopId"`
	ShopName    string              `json:"shopName,omitempty"`
	ShopOwner   string              `json:"shopOwner,omitempty"`
	Items       []OrderLineResponse `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
}

// DeliveryDraftRequest campos de cabecera del formulario de entrega.
type DeliveryDraftRequest struct {
	ShopID       string          `json:"shop_id"`
	OrderID      string          `json:"order_id"`
	CashReceived decimal.Decimal `json:"cash_received"`
	Status       string          `json:"status"`
	HasReturns   bool            `json:"has_returns"`
}

// ReturnItemRequest ítem devuelto.
type ReturnItemRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	Reason      string `json:"reason"`
	Action      string `json:"action"`
}

// ProductRequest alta de producto.
type ProductRequest struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	VendorName string          `json:"vendorName"`
	CostPrice  decimal.Decimal `json:"costPrice"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	StockQty   decimal.Decimal `json:"stockQty"`
	Unit       string          `json:"unit"`
}

// StaffRequest alta de empleado.
type StaffRequest struct {
	StaffID          string          `json:"Staff_ID"`
	Name             string          `json:"Name"`
	Role             string          `json:"Role"`
	Mobile           string          `json:"Mobile"`
	AssignedAreaID   string          `json:"Assigned_Area_ID"`
	AssignedAreaName string          `json:"Assigned_Area_Name"`
	BaseSalary       decimal.Decimal `json:"Base_Salary"`
}

// SubmissionResponse resultado de un envío al backend.
type SubmissionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CatalogueResponse datos estáticos para los selectores de los formularios.
type CatalogueResponse struct {
	Products         []entity.Product `json:"products"`
	Shops            []entity.Shop    `json:"shops"`
	Vendors          []entity.Vendor  `json:"vendors"`
	ReturnReasons    []string         `json:"returnReasons"`
	StaffRoles       []string         `json:"staffRoles"`
	DeliveryStatuses []string         `json:"deliveryStatuses"`
}

// PrefillResponse resultado de precargar devoluciones desde el pedido buscado.
type PrefillResponse struct {
	Prefilled int    `json:"prefilled"`
	Message   string `json:"message"`
}
