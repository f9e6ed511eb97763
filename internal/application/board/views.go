package board

import (
	"github.com/jhoicas/smart-distribution/internal/application/resources"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// Nombres de vista.
const (
	ViewDashboard      = "dashboard"
	ViewOrders         = "orders"
	ViewCustomers      = "customers"
	ViewPurchases      = "purchases"
	ViewDelivery       = "delivery"
	ViewAddProduct     = "add-product"
	ViewSalesOrder     = "sales-order"
	ViewSalesDashboard = "sales-dashboard"
	ViewRiderDashboard = "rider-dashboard"
)

// View página del tablero: ruta, roles que la ven y recurso que carga al montarse.
// Resource vacío = vista estática (solo catálogo). IdentityParam, si no está vacío, es el
// parámetro de consulta que recibe el id de la identidad activa.
type View struct {
	Name          string
	Path          string
	Roles         []entity.Role
	Resource      string
	IdentityParam string
}

var admin, sales, rider = entity.RoleAdmin, entity.RoleSales, entity.RoleRider

var registry = []View{
	{Name: ViewDashboard, Path: "/", Roles: []entity.Role{admin}, Resource: resources.Dashboard},
	{Name: ViewOrders, Path: "/orders", Roles: []entity.Role{admin, sales}, Resource: resources.TodayOrders},
	{Name: ViewCustomers, Path: "/customers", Roles: []entity.Role{admin, sales}, Resource: resources.TodayCustomers},
	{Name: ViewPurchases, Path: "/purchases", Roles: []entity.Role{admin}, Resource: resources.Purchases},
	{Name: ViewDelivery, Path: "/delivery", Roles: []entity.Role{admin, rider}, Resource: resources.AllDeliveries},
	{Name: ViewAddProduct, Path: "/add-product", Roles: []entity.Role{admin}, Resource: resources.NextProductID},
	{Name: ViewSalesOrder, Path: "/sales-order", Roles: []entity.Role{sales}},
	{Name: ViewSalesDashboard, Path: "/sales-dashboard", Roles: []entity.Role{sales},
		Resource: resources.StaffOrders, IdentityParam: resources.ParamStaffID},
	{Name: ViewRiderDashboard, Path: "/rider-dashboard", Roles: []entity.Role{rider},
		Resource: resources.RiderDeliveries, IdentityParam: resources.ParamRiderID},
}

// Views todas las vistas en orden de navegación.
func Views() []View {
	out := make([]View, len(registry))
	copy(out, registry)
	return out
}

// Lookup busca una vista por nombre.
func Lookup(name string) (View, bool) {
	for _, v := range registry {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// ByPath busca una vista por ruta.
func ByPath(path string) (View, bool) {
	for _, v := range registry {
		if v.Path == path {
			return v, true
		}
	}
	return View{}, false
}

// Static true si la vista no carga ningún recurso remoto.
func (v View) Static() bool { return v.Resource == "" }
