package entity

import "github.com/shopspring/decimal"

// DashboardSummary resumen de negocio calculado por el backend remoto (GET /webhook/dashboard).
type DashboardSummary struct {
	DailySummary   DailySummary   `json:"daily_summary"`
	MonthlySummary MonthlySummary `json:"monthly_summary"`
	SummaryCounts  SummaryCounts  `json:"summary_counts"`
	TopPerformers  TopPerformers  `json:"top_performers"`
	KeyMetrics     KeyMetrics     `json:"key_metrics"`
}

// DailySummary ventas y ganancia del día.
type DailySummary struct {
	TotalSale    decimal.Decimal `json:"total_sale"`
	TotalProfits decimal.Decimal `json:"total_profits"`
	OrdersCount  Count           `json:"orders_count"`
}

// MonthlySummary acumulados del mes en curso. MonthlyProfitMargin es fracción (0–1).
type MonthlySummary struct {
	MonthlySales        decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit       decimal.Decimal `json:"monthly_profit"`
	TotalOrders         Count           `json:"total_orders"`
	MonthlyProfitMargin decimal.Decimal `json:"monthly_profit_margin"`
}

// SummaryCounts totales de catálogo.
type SummaryCounts struct {
	TotalCustomers Count `json:"total_customers"`
	TotalOrders    Count `json:"total_orders"`
	TotalProducts  Count `json:"total_products"`
}

// TopPerformers mejores área, proveedor y vendedores.
type TopPerformers struct {
	TopAreaSales    AreaSales    `json:"top_area_sales"`
	TopVendorProfit VendorProfit `json:"top_vendor_profit"`
	TopStaffSales   StaffSales   `json:"top_staff_sales"`
	TopStaffProfit  StaffProfit  `json:"top_staff_profit"`
}

type AreaSales struct {
	Area   string          `json:"area"`
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
	Orders Count           `json:"orders"`
}

type VendorProfit struct {
	VendorID     string          `json:"vendor_id"`
	Sales        decimal.Decimal `json:"sales"`
	Profit       decimal.Decimal `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

type StaffSales struct {
	StaffName   string          `json:"staff_name"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	OrderCount  Count           `json:"order_count"`
}

type StaffProfit struct {
	StaffName         string          `json:"staff_name"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	AvgProfitPerOrder decimal.Decimal `json:"avg_profit_per_order"`
}

// KeyMetrics márgenes como fracción (0–1).
type KeyMetrics struct {
	DailyProfitMargin decimal.Decimal `json:"daily_profit_margin"`
	MonthlyGrowth     decimal.Decimal `json:"monthly_growth"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}
