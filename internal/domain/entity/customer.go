package entity

import "github.com/shopspring/decimal"

// CustomerList tiendas atendidas hoy (GET /webhook/Today-Customer).
type CustomerList struct {
	Summary        CustomerSummary    `json:"summary"`
	RecentActivity []CustomerActivity `json:"recentActivity"`
}

type CustomerSummary struct {
	TotalShops       Count `json:"totalShops"`
	RecentlyVisited  Count `json:"recentlyVisited"`
	WithOutstanding  Count `json:"withOutstanding"`
	RequiresFollowUp Count `json:"requiresFollowUp"`
}

// CustomerActivity una tienda con su última visita y saldo.
type CustomerActivity struct {
	ShopID     string             `json:"shopId"`
	Name       string             `json:"name"`
	Owner      string             `json:"owner"`
	Area       string             `json:"area"`
	Contact    string             `json:"contact"`
	LastVisit  string             `json:"lastVisit"`
	Financials CustomerFinancials `json:"financials"`
}

type CustomerFinancials struct {
	Balance   decimal.Decimal `json:"balance"`
	Available decimal.Decimal `json:"available"`
}
