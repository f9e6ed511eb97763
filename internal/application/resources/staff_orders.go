package resources

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// MonthlySalesTarget meta mensual de ventas de un vendedor.
var MonthlySalesTarget = decimal.NewFromInt(100_000)

// NormalizeStaffOrders acepta {success, data[]} o un arreglo de pedidos. success=false se
// interpreta como lista vacía, no como error. Las estadísticas siempre se derivan.
func NormalizeStaffOrders(body []byte) (entity.StaffOrderList, error) {
	obj, arr, err := document(body)
	if err != nil {
		return entity.StaffOrderList{}, err
	}
	if obj == nil && len(arr) == 1 {
		if f, ok := asFields(arr[0]); ok && f.has("success", "data") {
			obj = f
		}
	}

	var orders []entity.Order
	switch {
	case obj == nil:
		orders = ordersFrom(objects(arr))
	case obj.has("success", "data"):
		if obj.raw("success") != nil {
			orders = ordersFrom(obj.list("data"))
		}
	default:
		return entity.StaffOrderList{}, fmt.Errorf("%w: faltan success/data", ErrUnexpectedShape)
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return entity.StaffOrderList{Stats: StaffOrderStatsOf(orders), Orders: orders}, nil
}

// StaffOrderStatsOf totales, pendientes, completados (Delivered o Completed) y ticket promedio.
func StaffOrderStatsOf(orders []entity.Order) entity.StaffOrderStats {
	var st entity.StaffOrderStats
	st.TotalOrders = entity.Count(len(orders))
	st.TotalAmount = decimal.Zero
	for _, o := range orders {
		st.TotalAmount = st.TotalAmount.Add(o.TotalAmount)
		switch {
		case o.Status == entity.OrderStatusPending:
			st.PendingOrders++
		case o.Completed():
			st.CompletedOrders++
		}
	}
	st.AverageOrderValue = decimal.Zero
	if len(orders) > 0 {
		st.AverageOrderValue = st.TotalAmount.Div(decimal.NewFromInt(int64(len(orders))))
	}
	return st
}

// TargetProgress avance de un vendedor contra la meta mensual.
type TargetProgress struct {
	Target    decimal.Decimal `json:"target"`
	Achieved  decimal.Decimal `json:"achieved"`
	Percent   int64           `json:"percent"`   // redondeado, puede pasar de 100
	Bar       int64           `json:"bar"`       // 0–100
	Remaining decimal.Decimal `json:"remaining"` // nunca negativo
}

// ProgressTowardsTarget calcula el avance de achieved sobre MonthlySalesTarget.
func ProgressTowardsTarget(achieved decimal.Decimal) TargetProgress {
	pct := achieved.Div(MonthlySalesTarget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	bar := pct
	if bar > 100 {
		bar = 100
	}
	if bar < 0 {
		bar = 0
	}
	remaining := MonthlySalesTarget.Sub(achieved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return TargetProgress{Target: MonthlySalesTarget, Achieved: achieved, Percent: pct, Bar: bar, Remaining: remaining}
}
