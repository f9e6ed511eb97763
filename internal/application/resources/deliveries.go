package resources

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizeDeliveries acepta {deliveries[]}, un arreglo de entregas o un arreglo de un elemento
// que envuelve el sobre. Las estadísticas siempre se derivan de la lista.
func NormalizeDeliveries(body []byte) (entity.DeliveryList, error) {
	obj, arr, err := document(body)
	if err != nil {
		return entity.DeliveryList{}, err
	}
	if obj == nil && len(arr) == 1 {
		if f, ok := asFields(arr[0]); ok && f.has("deliveries") {
			obj = f
		}
	}

	var items []fields
	if obj != nil {
		if !obj.has("deliveries") {
			return entity.DeliveryList{}, fmt.Errorf("%w: falta deliveries", ErrUnexpectedShape)
		}
		items = obj.list("deliveries")
	} else {
		items = objects(arr)
	}

	list := make([]entity.Delivery, 0, len(items))
	for _, it := range items {
		list = append(list, deliveryFrom(it))
	}
	return entity.DeliveryList{Stats: DeliveryStatsOf(list), Deliveries: list}, nil
}

func deliveryFrom(it fields) entity.Delivery {
	d := entity.Delivery{
		ID:           it.str("id", "_id", "ID"),
		ShopID:       it.str("shop_id", "shopId", "ShopID", "Shop_ID"),
		OrderID:      it.str("order_id", "orderId", "OrderID", "Order_ID"),
		CashReceived: it.dec("cash_received", "cashReceived", "Cash_Received"),
		Status:       it.str("status", "Status"),
		RiderID:      it.str("rider_id", "riderId", "Rider_ID"),
		RiderName:    it.str("rider_name", "riderName", "Rider_Name"),
		Timestamp:    it.str("timestamp", "Timestamp", "date", "Date"),
		DisplayTime:  it.str("display_time", "displayTime"),
	}
	returns := it.list("return_items", "returnItems", "Return_Items")
	d.ReturnItems = make([]entity.ReturnItem, 0, len(returns))
	for _, r := range returns {
		d.ReturnItems = append(d.ReturnItems, entity.ReturnItem{
			ProductID:   r.str("product_id", "productId", "Product_ID"),
			ProductName: r.str("product_name", "productName", "Product_Name"),
			Qty:         r.count("qty", "quantity", "Qty"),
			Reason:      r.str("reason", "Reason"),
			Action:      r.str("action", "Action"),
		})
	}
	return d
}

// DeliveryStatsOf conteo por estado, efectivo cobrado y cantidad de ítems devueltos.
func DeliveryStatsOf(list []entity.Delivery) entity.DeliveryStats {
	st := entity.DeliveryStats{Total: entity.Count(len(list)), TotalCash: decimal.Zero}
	for _, d := range list {
		switch d.Status {
		case entity.DeliveryStatusDelivered:
			st.Delivered++
		case entity.DeliveryStatusPartialReturn:
			st.PartialReturn++
		case entity.DeliveryStatusFullyReturned:
			st.FullyReturned++
		case entity.DeliveryStatusFailed:
			st.Failed++
		}
		st.TotalCash = st.TotalCash.Add(d.CashReceived)
		st.ReturnsCount += entity.Count(len(d.ReturnItems))
	}
	return st
}
