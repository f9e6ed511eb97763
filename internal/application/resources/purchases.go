package resources

import (
	"fmt"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizePurchases acepta {summary, productAnalysis, vendorPerformance} o un arreglo de un
// elemento que lo envuelve. ReorderPriority vacío pasa a "Low".
func NormalizePurchases(body []byte) (entity.PurchaseAnalysis, error) {
	obj, err := singleObject(body)
	if err != nil {
		return entity.PurchaseAnalysis{}, err
	}
	if !obj.has("summary", "productAnalysis", "vendorPerformance") {
		return entity.PurchaseAnalysis{}, fmt.Errorf("%w: faltan summary/productAnalysis", ErrUnexpectedShape)
	}

	s := obj.obj("summary")
	out := entity.PurchaseAnalysis{
		Summary: entity.PurchaseSummary{
			TotalPurchases:      s.count("totalPurchases"),
			RecentPurchases:     s.count("recentPurchases"),
			TotalInventoryValue: s.dec("totalInventoryValue"),
			TotalUnitsPurchased: s.dec("totalUnitsPurchased"),
			AverageUnitCost:     s.dec("averageUnitCost"),
		},
	}

	products := obj.list("productAnalysis")
	out.ProductAnalysis = make([]entity.ProductAnalysis, 0, len(products))
	for _, p := range products {
		priority := p.str("reorderPriority", "ReorderPriority", "reorder_priority")
		if priority == "" {
			priority = entity.DefaultReorderPriority
		}
		out.ProductAnalysis = append(out.ProductAnalysis, entity.ProductAnalysis{
			ProductID:             p.str("productId", "ProductID", "product_id"),
			TotalQuantity:         p.dec("totalQuantity", "TotalQuantity"),
			TotalCost:             p.dec("totalCost", "TotalCost"),
			AverageUnitCost:       p.dec("averageUnitCost", "AverageUnitCost"),
			VendorCount:           p.count("vendorCount", "VendorCount"),
			LastPurchaseDate:      p.str("lastPurchaseDate", "LastPurchaseDate"),
			DaysSinceLastPurchase: p.count("daysSinceLastPurchase", "DaysSinceLastPurchase"),
			ReorderPriority:       priority,
		})
	}

	vendors := obj.list("vendorPerformance")
	out.VendorPerformance = make([]entity.VendorPerformance, 0, len(vendors))
	for _, v := range vendors {
		out.VendorPerformance = append(out.VendorPerformance, entity.VendorPerformance{
			Vendor:       v.str("vendor", "Vendor", "vendorName", "vendorId"),
			ProductCount: v.count("productCount", "ProductCount"),
			TotalSpent:   v.dec("totalSpent", "TotalSpent"),
		})
	}
	return out, nil
}
