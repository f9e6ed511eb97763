package resources

import (
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizeDashboard acepta el objeto de resumen o un arreglo de un elemento que lo envuelve.
// Cada sección se lee campo a campo: un valor con formato inesperado vale 0 sin descartar el resto.
func NormalizeDashboard(body []byte) (entity.DashboardSummary, error) {
	obj, err := singleObject(body)
	if err != nil {
		return entity.DashboardSummary{}, err
	}

	daily := obj.obj("daily_summary", "dailySummary")
	monthly := obj.obj("monthly_summary", "monthlySummary")
	counts := obj.obj("summary_counts", "summaryCounts")
	top := obj.obj("top_performers", "topPerformers")
	metrics := obj.obj("key_metrics", "keyMetrics")

	area := top.obj("top_area_sales", "topAreaSales")
	vendor := top.obj("top_vendor_profit", "topVendorProfit")
	staffSales := top.obj("top_staff_sales", "topStaffSales")
	staffProfit := top.obj("top_staff_profit", "topStaffProfit")

	return entity.DashboardSummary{
		DailySummary: entity.DailySummary{
			TotalSale:    daily.dec("total_sale", "totalSale"),
			TotalProfits: daily.dec("total_profits", "totalProfits"),
			OrdersCount:  daily.count("orders_count", "ordersCount"),
		},
		MonthlySummary: entity.MonthlySummary{
			MonthlySales:        monthly.dec("monthly_sales", "monthlySales"),
			MonthlyProfit:       monthly.dec("monthly_profit", "monthlyProfit"),
			TotalOrders:         monthly.count("total_orders", "totalOrders"),
			MonthlyProfitMargin: monthly.dec("monthly_profit_margin", "monthlyProfitMargin"),
		},
		SummaryCounts: entity.SummaryCounts{
			TotalCustomers: counts.count("total_customers", "totalCustomers"),
			TotalOrders:    counts.count("total_orders", "totalOrders"),
			TotalProducts:  counts.count("total_products", "totalProducts"),
		},
		TopPerformers: entity.TopPerformers{
			TopAreaSales: entity.AreaSales{
				Area:   area.str("area", "Area"),
				Sales:  area.dec("sales", "Sales"),
				Profit: area.dec("profit", "Profit"),
				Orders: area.count("orders", "Orders"),
			},
			TopVendorProfit: entity.VendorProfit{
				VendorID:     vendor.str("vendor_id", "vendorId", "Vendor_ID"),
				Sales:        vendor.dec("sales", "Sales"),
				Profit:       vendor.dec("profit", "Profit"),
				ProfitMargin: vendor.dec("profit_margin", "profitMargin"),
			},
			TopStaffSales: entity.StaffSales{
				StaffName:   staffSales.str("staff_name", "staffName"),
				TotalSales:  staffSales.dec("total_sales", "totalSales"),
				TotalProfit: staffSales.dec("total_profit", "totalProfit"),
				OrderCount:  staffSales.count("order_count", "orderCount"),
			},
			TopStaffProfit: entity.StaffProfit{
				StaffName:         staffProfit.str("staff_name", "staffName"),
				TotalProfit:       staffProfit.dec("total_profit", "totalProfit"),
				TotalSales:        staffProfit.dec("total_sales", "totalSales"),
				AvgProfitPerOrder: staffProfit.dec("avg_profit_per_order", "avgProfitPerOrder"),
			},
		},
		KeyMetrics: entity.KeyMetrics{
			DailyProfitMargin: metrics.dec("daily_profit_margin", "dailyProfitMargin"),
			MonthlyGrowth:     metrics.dec("monthly_growth", "monthlyGrowth"),
			AverageOrderValue: metrics.dec("average_order_value", "averageOrderValue"),
		},
	}, nil
}
