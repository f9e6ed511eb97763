package resources

import (
	"fmt"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizeOrderDetails acepta {order, products} o un arreglo cuyo primer elemento lo es.
// Sin "order" la búsqueda cuenta como no encontrada.
func NormalizeOrderDetails(body []byte) (entity.OrderDetails, error) {
	obj, arr, err := document(body)
	if err != nil {
		return entity.OrderDetails{}, err
	}
	if obj == nil && len(arr) > 0 {
		obj, _ = asFields(arr[0])
	}
	if obj == nil || obj.raw("order") == nil {
		return entity.OrderDetails{}, fmt.Errorf("%w: falta order", ErrUnexpectedShape)
	}

	o := obj.obj("order")
	out := entity.OrderDetails{
		Order: entity.OrderHeader{
			OrderID:     o.str("order_id", "orderId", "OrderID"),
			ShopID:      o.str("shop_id", "shopId", "ShopID"),
			TotalAmount: o.dec("total_amount", "totalAmount", "TotalAmount"),
		},
	}
	products := obj.list("products")
	out.Products = make([]entity.OrderProduct, 0, len(products))
	for _, p := range products {
		out.Products = append(out.Products, entity.OrderProduct{
			ProductID:   p.str("product_id", "productId", "Product_ID"),
			ProductName: p.str("product_name", "productName", "name"),
			Quantity:    p.count("quantity", "qty", "Qty"),
		})
	}
	return out, nil
}
