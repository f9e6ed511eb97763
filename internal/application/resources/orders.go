package resources

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizeOrders acepta {summary, orders} o un arreglo de pedidos. Un arreglo de un elemento
// que contiene summary u orders se trata como sobre envuelto. Los campos de cada pedido aceptan
// ambas convenciones (OrderID/orderId, ShopID/shopId, ...). Sin summary, se deriva de los pedidos.
func NormalizeOrders(body []byte) (entity.OrderList, error) {
	obj, arr, err := document(body)
	if err != nil {
		return entity.OrderList{}, err
	}
	if obj == nil && len(arr) == 1 {
		if f, ok := asFields(arr[0]); ok && f.has("summary", "orders") {
			obj = f
		}
	}

	if obj == nil {
		orders := ordersFrom(objects(arr))
		return entity.OrderList{Summary: SummarizeOrders(orders), Orders: orders}, nil
	}
	if !obj.has("summary", "orders") {
		return entity.OrderList{}, fmt.Errorf("%w: faltan summary/orders", ErrUnexpectedShape)
	}
	orders := ordersFrom(obj.list("orders"))
	if !obj.has("summary") {
		return entity.OrderList{Summary: SummarizeOrders(orders), Orders: orders}, nil
	}
	s := obj.obj("summary")
	return entity.OrderList{
		Summary: entity.OrderSummary{
			TotalOrders:        s.count("totalOrders"),
			TotalRevenue:       s.dec("totalRevenue"),
			UniqueShops:        s.count("uniqueShops"),
			UniqueStaffMembers: s.count("uniqueStaffMembers"),
		},
		Orders: orders,
	}, nil
}

// SummarizeOrders conteo, ingresos y tiendas/vendedores distintos.
func SummarizeOrders(orders []entity.Order) entity.OrderSummary {
	shops := map[string]struct{}{}
	staff := map[string]struct{}{}
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.TotalAmount)
		shops[o.ShopID] = struct{}{}
		staff[o.StaffID] = struct{}{}
	}
	return entity.OrderSummary{
		TotalOrders:        entity.Count(len(orders)),
		TotalRevenue:       revenue,
		UniqueShops:        entity.Count(len(shops)),
		UniqueStaffMembers: entity.Count(len(staff)),
	}
}

func ordersFrom(items []fields) []entity.Order {
	out := make([]entity.Order, 0, len(items))
	for _, it := range items {
		out = append(out, orderFrom(it))
	}
	return out
}

func orderFrom(it fields) entity.Order {
	return entity.Order{
		OrderID:     it.str("OrderID", "orderId", "order_id", "Order_ID"),
		OrderDate:   it.str("Date", "orderDate", "OrderDate", "date"),
		ShopID:      it.str("ShopID", "shopId", "shop_id", "Shop_ID"),
		StaffID:     it.str("StaffID", "staffId", "staff_id", "Salesman_ID"),
		TotalAmount: it.dec("TotalAmount", "totalAmount", "total_amount", "Total_Amount"),
		Status:      it.str("Status", "status"),
		ProofLink:   it.str("ProofLink", "proofLink", "proof_link"),
	}
}

func firstNonZero(ds ...decimal.Decimal) decimal.Decimal {
	for _, d := range ds {
		if !d.IsZero() {
			return d
		}
	}
	return decimal.Zero
}
