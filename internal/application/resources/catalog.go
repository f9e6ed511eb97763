// Package resources define los recursos remotos del tablero: endpoint, timeout, intervalo,
// normalización de las respuestas del backend y el valor vacío que se muestra si fallan.
package resources

import (
	"time"

	"github.com/jhoicas/smart-distribution/internal/application/resourcesync"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// Nombres de recursos.
const (
	Dashboard       = "dashboard"
	TodayCustomers  = "today-customers"
	TodayOrders     = "today-orders"
	Purchases       = "purchases"
	AllDeliveries   = "all-deliveries"
	RiderDeliveries = "rider-deliveries"
	StaffOrders     = "staff-orders"
	NextProductID   = "next-product-id"
)

// Parámetros de query de los recursos por identidad.
const (
	ParamRiderID = "riderId"
	ParamStaffID = "staffId"
	ParamOrderID = "orderId"
)

const (
	readTimeout      = 10 * time.Second
	productIDTimeout = 8 * time.Second
)

// DashboardResource resumen de negocio del administrador.
func DashboardResource() resourcesync.Resource[entity.DashboardSummary] {
	return resourcesync.Resource[entity.DashboardSummary]{
		Name:      Dashboard,
		Endpoint:  "/webhook/dashboard",
		Timeout:   readTimeout,
		Interval:  5 * time.Minute,
		Normalize: NormalizeDashboard,
		Fallback:  func() entity.DashboardSummary { return entity.DashboardSummary{} },
	}
}

// TodayCustomersResource tiendas visitadas hoy.
func TodayCustomersResource() resourcesync.Resource[entity.CustomerList] {
	return resourcesync.Resource[entity.CustomerList]{
		Name:      TodayCustomers,
		Endpoint:  "/webhook/Today-Customer",
		Timeout:   readTimeout,
		Interval:  30 * time.Second,
		Normalize: NormalizeCustomers,
		Fallback:  func() entity.CustomerList { return entity.CustomerList{RecentActivity: []entity.CustomerActivity{}} },
	}
}

// TodayOrdersResource pedidos del día.
func TodayOrdersResource() resourcesync.Resource[entity.OrderList] {
	return resourcesync.Resource[entity.OrderList]{
		Name:      TodayOrders,
		Endpoint:  "/webhook/Today-Order",
		Timeout:   readTimeout,
		Interval:  30 * time.Second,
		Normalize: NormalizeOrders,
		Fallback:  func() entity.OrderList { return entity.OrderList{Orders: []entity.Order{}} },
	}
}

// PurchasesResource análisis de compras.
func PurchasesResource() resourcesync.Resource[entity.PurchaseAnalysis] {
	return resourcesync.Resource[entity.PurchaseAnalysis]{
		Name:      Purchases,
		Endpoint:  "/webhook/Purchase-data",
		Timeout:   readTimeout,
		Interval:  30 * time.Second,
		Normalize: NormalizePurchases,
		Fallback: func() entity.PurchaseAnalysis {
			return entity.PurchaseAnalysis{
				ProductAnalysis:   []entity.ProductAnalysis{},
				VendorPerformance: []entity.VendorPerformance{},
			}
		},
	}
}

// AllDeliveriesResource todas las entregas (vista de administrador).
func AllDeliveriesResource() resourcesync.Resource[entity.DeliveryList] {
	return resourcesync.Resource[entity.DeliveryList]{
		Name:      AllDeliveries,
		Endpoint:  "/webhook/all-delivery",
		Timeout:   readTimeout,
		Interval:  30 * time.Second,
		Normalize: NormalizeDeliveries,
		Fallback:  emptyDeliveries,
	}
}

// RiderDeliveriesResource historial de un rider; requiere ParamRiderID.
func RiderDeliveriesResource() resourcesync.Resource[entity.DeliveryList] {
	return resourcesync.Resource[entity.DeliveryList]{
		Name:      RiderDeliveries,
		Endpoint:  "/webhook/Dilivery-History",
		Timeout:   readTimeout,
		Interval:  60 * time.Second,
		Normalize: NormalizeDeliveries,
		Fallback:  emptyDeliveries,
	}
}

// StaffOrdersResource pedidos de un vendedor; requiere ParamStaffID.
func StaffOrdersResource() resourcesync.Resource[entity.StaffOrderList] {
	return resourcesync.Resource[entity.StaffOrderList]{
		Name:      StaffOrders,
		Endpoint:  "/webhook/sales-id-order",
		Timeout:   readTimeout,
		Interval:  60 * time.Second,
		Normalize: NormalizeStaffOrders,
		Fallback:  func() entity.StaffOrderList { return entity.StaffOrderList{Orders: []entity.Order{}} },
	}
}

// NextProductIDResource siguiente id de producto. Sin refresco automático; vacío = modo manual.
func NextProductIDResource() resourcesync.Resource[entity.NextProductID] {
	return resourcesync.Resource[entity.NextProductID]{
		Name:      NextProductID,
		Endpoint:  "/webhook/Product-id",
		Timeout:   productIDTimeout,
		Normalize: NormalizeNextProductID,
		Fallback:  func() entity.NextProductID { return entity.NextProductID{} },
	}
}

// OrderDetailsEndpoint búsqueda de un pedido para el formulario de entrega.
const OrderDetailsEndpoint = "/webhook/Order-Details"

func emptyDeliveries() entity.DeliveryList {
	return entity.DeliveryList{Deliveries: []entity.Delivery{}}
}
