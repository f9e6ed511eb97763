package entity

import "github.com/shopspring/decimal"

// PurchaseAnalysis análisis de compras e inventario (GET /webhook/Purchase-data).
type PurchaseAnalysis struct {
	Summary           PurchaseSummary     `json:"summary"`
	ProductAnalysis   []ProductAnalysis   `json:"productAnalysis"`
	VendorPerformance []VendorPerformance `json:"vendorPerformance"`
}

type PurchaseSummary struct {
	TotalPurchases      Count           `json:"totalPurchases"`
	RecentPurchases     Count           `json:"recentPurchases"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	TotalUnitsPurchased decimal.Decimal `json:"totalUnitsPurchased"`
	AverageUnitCost     decimal.Decimal `json:"averageUnitCost"`
}

// Prioridad de reposición por defecto cuando el backend no la informa.
const DefaultReorderPriority = "Low"

type ProductAnalysis struct {
	ProductID             string          `json:"productId"`
	TotalQuantity         decimal.Decimal `json:"totalQuantity"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	AverageUnitCost       decimal.Decimal `json:"averageUnitCost"`
	VendorCount           Count           `json:"vendorCount"`
	LastPurchaseDate      string          `json:"lastPurchaseDate"`
	DaysSinceLastPurchase Count           `json:"daysSinceLastPurchase"`
	ReorderPriority       string          `json:"reorderPriority"`
}

type VendorPerformance struct {
	Vendor       string          `json:"vendor"`
	ProductCount Count           `json:"productCount"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
}

// NextProductID siguiente identificador de producto sugerido (GET /webhook/Product-id).
// Vacío = modo manual.
type NextProductID struct {
	NewProductID string `json:"newProductId"`
}
