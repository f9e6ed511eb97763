package resources

import (
	"fmt"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizeCustomers acepta {summary, recentActivity}, un arreglo de un elemento que lo envuelve
// o un arreglo de tiendas (el resumen se deriva; requiresFollowUp queda en 0).
func NormalizeCustomers(body []byte) (entity.CustomerList, error) {
	obj, arr, err := document(body)
	if err != nil {
		return entity.CustomerList{}, err
	}
	if obj == nil && len(arr) == 1 {
		if f, ok := asFields(arr[0]); ok && f.has("summary", "recentActivity") {
			obj = f
		}
	}

	if obj != nil {
		if !obj.has("summary", "recentActivity") {
			return entity.CustomerList{}, fmt.Errorf("%w: faltan summary/recentActivity", ErrUnexpectedShape)
		}
		s := obj.obj("summary")
		return entity.CustomerList{
			Summary: entity.CustomerSummary{
				TotalShops:       s.count("totalShops"),
				RecentlyVisited:  s.count("recentlyVisited"),
				WithOutstanding:  s.count("withOutstanding"),
				RequiresFollowUp: s.count("requiresFollowUp"),
			},
			RecentActivity: customerActivities(obj.list("recentActivity")),
		}, nil
	}

	acts := customerActivities(objects(arr))
	out := entity.CustomerList{RecentActivity: acts}
	out.Summary.TotalShops = entity.Count(len(acts))
	for _, a := range acts {
		if a.LastVisit != "" {
			out.Summary.RecentlyVisited++
		}
		if a.Financials.Balance.IsPositive() {
			out.Summary.WithOutstanding++
		}
	}
	return out, nil
}

func customerActivities(items []fields) []entity.CustomerActivity {
	out := make([]entity.CustomerActivity, 0, len(items))
	for _, it := range items {
		fin := it.obj("financials", "Financials")
		out = append(out, entity.CustomerActivity{
			ShopID:    it.str("shopId", "ShopID", "shop_id"),
			Name:      it.str("name", "Name", "shopName", "ShopName"),
			Owner:     it.str("owner", "Owner", "ownerName"),
			Area:      it.str("area", "Area"),
			Contact:   it.str("contact", "Contact", "phone"),
			LastVisit: it.str("lastVisit", "LastVisit", "last_visit"),
			Financials: entity.CustomerFinancials{
				Balance:   firstNonZero(fin.dec("balance", "Balance"), it.dec("balance", "Balance")),
				Available: firstNonZero(fin.dec("available", "Available"), it.dec("available", "Available")),
			},
		})
	}
	return out
}
