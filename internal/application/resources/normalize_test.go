package resources_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/application/resources"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeOrders_ArregloConCasingMixto(t *testing.T) {
	body := `[
		{"OrderID":"ORD-1","ShopID":"SHP-001","StaffID":"BK-101","TotalAmount":1200,"Status":"Pending","Date":"2024-05-01"},
		{"orderId":"ORD-2","shopId":"SHP-002","staffId":"BK-101","totalAmount":"800.50","status":"Delivered"},
		{"OrderID":"ORD-3","shopId":"SHP-001","StaffID":"BK-102","TotalAmount":0}
	]`
	got, err := resources.NormalizeOrders([]byte(body))
	require.NoError(t, err)

	require.Len(t, got.Orders, 3)
	assert.Equal(t, entity.Count(3), got.Summary.TotalOrders)
	assert.True(t, dec("2000.5").Equal(got.Summary.TotalRevenue))
	assert.Equal(t, entity.Count(2), got.Summary.UniqueShops)
	assert.Equal(t, entity.Count(2), got.Summary.UniqueStaffMembers)

	assert.Equal(t, []string{"ORD-1", "ORD-2", "ORD-3"},
		[]string{got.Orders[0].OrderID, got.Orders[1].OrderID, got.Orders[2].OrderID})
	assert.Equal(t, "SHP-002", got.Orders[1].ShopID)
	assert.Equal(t, "2024-05-01", got.Orders[0].OrderDate)
	assert.Equal(t, "Delivered", got.Orders[1].Status)
}

func TestNormalizeOrders_SobreConSummary(t *testing.T) {
	body := `{"summary":{"totalOrders":"5","totalRevenue":9000,"uniqueShops":4,"uniqueStaffMembers":2},
		"orders":[{"OrderID":"ORD-9","TotalAmount":"Rs 1,500"}]}`
	got, err := resources.NormalizeOrders([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, entity.Count(5), got.Summary.TotalOrders)
	assert.True(t, dec("9000").Equal(got.Summary.TotalRevenue))
	require.Len(t, got.Orders, 1)
	assert.True(t, dec("1500").Equal(got.Orders[0].TotalAmount))
}

func TestNormalizeOrders_SobreEnvueltoEnArreglo(t *testing.T) {
	got, err := resources.NormalizeOrders([]byte(`[{"orders":[{"orderId":"A"},{"orderId":"B"}]}]`))
	require.NoError(t, err)
	assert.Len(t, got.Orders, 2)
	assert.Equal(t, entity.Count(2), got.Summary.TotalOrders)
}

func TestNormalizeOrders_FormasInvalidas(t *testing.T) {
	for _, body := range []string{`"hola"`, `42`, `{"foo":1}`, `<html>`, ``} {
		_, err := resources.NormalizeOrders([]byte(body))
		assert.Error(t, err, body)
	}
	_, err := resources.NormalizeOrders([]byte(`{"foo":1}`))
	assert.True(t, errors.Is(err, resources.ErrUnexpectedShape))
}

// ──────────────────────────────────────────────────────────────────────────────
// Entregas / pedidos de vendedor
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeDeliveries_EstadisticasDerivadas(t *testing.T) {
	body := `{"deliveries":[
		{"shop_id":"SHP-010","order_id":"ORD-1","cash_received":5000,"status":"Delivered","rider_id":"rider1","return_items":[]},
		{"shopId":"SHP-003","orderId":"ORD-2","cash_received":"2500","status":"Partial Return","riderId":"rider2",
		 "return_items":[{"product_id":"P012","qty":"2","reason":"Expired","action":"Restock"}]},
		{"shop_id":"SHP-021","order_id":"ORD-3","status":"Fully Returned","rider_id":"rider1",
		 "return_items":[{"productId":"P011","qty":1,"reason":"Damaged"},{"product_id":"P014","qty":3,"reason":"Shop Rejected"}]},
		{"shop_id":"SHP-008","order_id":"ORD-4","status":"Failed","rider_id":"rider3"}
	]}`
	got, err := resources.NormalizeDeliveries([]byte(body))
	require.NoError(t, err)

	st := got.Stats
	assert.Equal(t, entity.Count(4), st.Total)
	assert.Equal(t, entity.Count(1), st.Delivered)
	assert.Equal(t, entity.Count(1), st.PartialReturn)
	assert.Equal(t, entity.Count(1), st.FullyReturned)
	assert.Equal(t, entity.Count(1), st.Failed)
	assert.True(t, dec("7500").Equal(st.TotalCash))
	assert.Equal(t, entity.Count(3), st.ReturnsCount)

	assert.Equal(t, "SHP-003", got.Deliveries[1].ShopID)
	assert.Equal(t, entity.Count(2), got.Deliveries[1].ReturnItems[0].Qty)
	assert.Equal(t, "P011", got.Deliveries[2].ReturnItems[0].ProductID)
	assert.NotNil(t, got.Deliveries[3].ReturnItems)
}

func TestNormalizeDeliveries_ArregloPlano(t *testing.T) {
	got, err := resources.NormalizeDeliveries([]byte(`[{"order_id":"X","status":"Delivered","cash_received":10}]`))
	require.NoError(t, err)
	assert.Equal(t, entity.Count(1), got.Stats.Delivered)
}

func TestNormalizeStaffOrders(t *testing.T) {
	body := `{"success":true,"data":[
		{"OrderID":"O1","TotalAmount":300,"Status":"Pending"},
		{"OrderID":"O2","TotalAmount":600,"Status":"Delivered"},
		{"OrderID":"O3","TotalAmount":"300","Status":"Completed"}
	]}`
	got, err := resources.NormalizeStaffOrders([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, entity.Count(3), got.Stats.TotalOrders)
	assert.Equal(t, entity.Count(1), got.Stats.PendingOrders)
	assert.Equal(t, entity.Count(2), got.Stats.CompletedOrders)
	assert.True(t, dec("1200").Equal(got.Stats.TotalAmount))
	assert.True(t, dec("400").Equal(got.Stats.AverageOrderValue))

	got, err = resources.NormalizeStaffOrders([]byte(`{"success":false}`))
	require.NoError(t, err)
	assert.Empty(t, got.Orders)
	assert.True(t, got.Stats.AverageOrderValue.IsZero())
}

func TestProgressTowardsTarget(t *testing.T) {
	p := resources.ProgressTowardsTarget(dec("25000"))
	assert.Equal(t, int64(25), p.Percent)
	assert.True(t, dec("75000").Equal(p.Remaining))

	p = resources.ProgressTowardsTarget(dec("150000"))
	assert.Equal(t, int64(150), p.Percent)
	assert.Equal(t, int64(100), p.Bar)
	assert.True(t, p.Remaining.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Resto de recursos
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeDashboard_ArregloDeUnElemento(t *testing.T) {
	body := `[{"daily_summary":{"total_sale":15000,"total_profits":"2500.5","orders_count":12},
		"monthly_summary":{"monthly_profit_margin":0.1234},
		"top_performers":{"top_area_sales":{"area":"Gulberg"}}}]`
	got, err := resources.NormalizeDashboard([]byte(body))
	require.NoError(t, err)
	assert.True(t, dec("15000").Equal(got.DailySummary.TotalSale))
	assert.True(t, dec("2500.5").Equal(got.DailySummary.TotalProfits))
	assert.Equal(t, entity.Count(12), got.DailySummary.OrdersCount)
	assert.Equal(t, "Gulberg", got.TopPerformers.TopAreaSales.Area)

	_, err = resources.NormalizeDashboard([]byte(`[{},{}]`))
	assert.Error(t, err)
}

func TestNormalizeDashboard_CampoConFormatoInesperadoNoDescartaElResto(t *testing.T) {
	body := `{"daily_summary":{"total_sale":"Rs 1,200","total_profits":"n/a","orders_count":"7"},
		"monthly_summary":{"monthlySales":90000,"total_orders":{"bad":true}},
		"summary_counts":{"total_customers":15}}`
	got, err := resources.NormalizeDashboard([]byte(body))
	require.NoError(t, err)
	assert.True(t, dec("1200").Equal(got.DailySummary.TotalSale))
	assert.True(t, got.DailySummary.TotalProfits.IsZero(), "lo no numérico vale 0")
	assert.Equal(t, entity.Count(7), got.DailySummary.OrdersCount)
	assert.True(t, dec("90000").Equal(got.MonthlySummary.MonthlySales))
	assert.Equal(t, entity.Count(0), got.MonthlySummary.TotalOrders)
	assert.Equal(t, entity.Count(15), got.SummaryCounts.TotalCustomers)
}

func TestNormalizeCustomers(t *testing.T) {
	got, err := resources.NormalizeCustomers([]byte(`{"summary":{"totalShops":3,"requiresFollowUp":1},
		"recentActivity":[{"shopId":"SHP-001","name":"City Supermarket","financials":{"balance":1200}}]}`))
	require.NoError(t, err)
	assert.Equal(t, entity.Count(3), got.Summary.TotalShops)
	assert.Equal(t, entity.Count(1), got.Summary.RequiresFollowUp)
	assert.True(t, dec("1200").Equal(got.RecentActivity[0].Financials.Balance))

	got, err = resources.NormalizeCustomers([]byte(`[{"ShopID":"SHP-1","lastVisit":"today","balance":50},{"shop_id":"SHP-2"}]`))
	require.NoError(t, err)
	assert.Equal(t, entity.Count(2), got.Summary.TotalShops)
	assert.Equal(t, entity.Count(1), got.Summary.RecentlyVisited)
	assert.Equal(t, entity.Count(1), got.Summary.WithOutstanding)
	assert.Equal(t, entity.Count(0), got.Summary.RequiresFollowUp)
}

func TestNormalizePurchases_PrioridadPorDefecto(t *testing.T) {
	got, err := resources.NormalizePurchases([]byte(`{"summary":{"totalInventoryValue":"12345678.9"},
		"productAnalysis":[{"productId":"P001","reorderPriority":"High"},{"productId":"P002"}],
		"vendorPerformance":[{"vendor":"V001","totalSpent":500}]}`))
	require.NoError(t, err)
	assert.True(t, dec("12345678.9").Equal(got.Summary.TotalInventoryValue))
	assert.Equal(t, "High", got.ProductAnalysis[0].ReorderPriority)
	assert.Equal(t, "Low", got.ProductAnalysis[1].ReorderPriority)
	assert.Equal(t, "V001", got.VendorPerformance[0].Vendor)
}

func TestNormalizeNextProductID(t *testing.T) {
	got, err := resources.NormalizeNextProductID([]byte(`[{"newProductId":"P031"}]`))
	require.NoError(t, err)
	assert.Equal(t, "P031", got.NewProductID)

	got, err = resources.NormalizeNextProductID([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, got.NewProductID, "sin id el formulario queda en modo manual")
}

func TestNormalizeOrderDetails(t *testing.T) {
	got, err := resources.NormalizeOrderDetails([]byte(`[{"order":{"order_id":"ORD-123456","shop_id":"SHP-004","total_amount":"3400"},
		"products":[{"product_id":"P005","product_name":"Milk 1L","quantity":4}]}]`))
	require.NoError(t, err)
	assert.Equal(t, "SHP-004", got.Order.ShopID)
	assert.True(t, dec("3400").Equal(got.Order.TotalAmount))
	require.Len(t, got.Products, 1)
	assert.Equal(t, entity.Count(4), got.Products[0].Quantity)

	_, err = resources.NormalizeOrderDetails([]byte(`{"products":[]}`))
	assert.ErrorIs(t, err, resources.ErrUnexpectedShape)
}

func TestFallbacks_SonRenderizables(t *testing.T) {
	assert.NotNil(t, resources.TodayOrdersResource().Fallback().Orders)
	assert.NotNil(t, resources.AllDeliveriesResource().Fallback().Deliveries)
	assert.NotNil(t, resources.PurchasesResource().Fallback().ProductAnalysis)
	assert.NotNil(t, resources.TodayCustomersResource().Fallback().RecentActivity)
	assert.True(t, resources.DashboardResource().Fallback().DailySummary.TotalSale.IsZero())
}
