package resources

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/pkg/format"
)

// WriteCSV escribe la tabla con encabezados.
func WriteCSV(w io.Writer, t dto.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func itoa(c entity.Count) string { return strconv.Itoa(int(c)) }

// DashboardTable indicadores principales del resumen.
func DashboardTable(d entity.DashboardSummary, f *format.Formatter) dto.Table {
	return dto.Table{
		Title:   "Business Dashboard",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Today's Sales", f.Sales(d.DailySummary.TotalSale)},
			{"Today's Profit", f.Sales(d.DailySummary.TotalProfits)},
			{"Today's Orders", itoa(d.DailySummary.OrdersCount)},
			{"Monthly Sales", f.Sales(d.MonthlySummary.MonthlySales)},
			{"Monthly Profit", f.Sales(d.MonthlySummary.MonthlyProfit)},
			{"Monthly Orders", itoa(d.MonthlySummary.TotalOrders)},
			{"Profit Margin", format.Percent(d.MonthlySummary.MonthlyProfitMargin)},
			{"Total Customers", itoa(d.SummaryCounts.TotalCustomers)},
			{"Total Products", itoa(d.SummaryCounts.TotalProducts)},
			{"Top Area", orNA(d.TopPerformers.TopAreaSales.Area)},
			{"Top Vendor", orNA(d.TopPerformers.TopVendorProfit.VendorID)},
			{"Top Staff (Sales)", orNA(d.TopPerformers.TopStaffSales.StaffName)},
			{"Top Staff (Profit)", orNA(d.TopPerformers.TopStaffProfit.StaffName)},
		},
	}
}

// CustomersTable tiendas atendidas hoy.
func CustomersTable(c entity.CustomerList, f *format.Formatter) dto.Table {
	t := dto.Table{
		Title:   "Today's Customers",
		Headers: []string{"Shop ID", "Shop", "Owner", "Area", "Contact", "Last Visit", "Balance", "Available"},
	}
	for _, a := range c.RecentActivity {
		t.Rows = append(t.Rows, []string{
			orNA(a.ShopID), orNA(a.Name), orNA(a.Owner), orNA(a.Area), orNA(a.Contact), orNA(a.LastVisit),
			f.Sales(a.Financials.Balance), f.Sales(a.Financials.Available),
		})
	}
	return t
}

// OrdersTable pedidos con el estado por defecto "Pending".
func OrdersTable(title string, orders []entity.Order, f *format.Formatter) dto.Table {
	t := dto.Table{
		Title:   title,
		Headers: []string{"Order ID", "Date", "Shop ID", "Staff ID", "Amount", "Status"},
	}
	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = entity.OrderStatusPending
		}
		t.Rows = append(t.Rows, []string{
			orNA(o.OrderID), orNA(o.OrderDate), orNA(o.ShopID), orNA(o.StaffID), f.Sales(o.TotalAmount), status,
		})
	}
	return t
}

// PurchasesTable análisis por producto.
func PurchasesTable(p entity.PurchaseAnalysis, f *format.Formatter) dto.Table {
	t := dto.Table{
		Title:   "Product Analysis",
		Headers: []string{"Product", "Qty", "Total Cost", "Avg", "Last", "Vendors", "Days", "Priority"},
	}
	for _, a := range p.ProductAnalysis {
		t.Rows = append(t.Rows, []string{
			orNA(a.ProductID), f.Number(a.TotalQuantity, 0), f.Sales(a.TotalCost), f.UnitCost(a.AverageUnitCost),
			orNA(a.LastPurchaseDate), itoa(a.VendorCount), itoa(a.DaysSinceLastPurchase), a.ReorderPriority,
		})
	}
	return t
}

// DeliveriesTable entregas; mismas columnas que el export CSV del panel de entregas.
func DeliveriesTable(list []entity.Delivery, f *format.Formatter, loc *time.Location) dto.Table {
	t := dto.Table{
		Title:   "Deliveries",
		Headers: []string{"Order ID", "Shop ID", "Rider", "Cash Received", "Status", "Date", "Return Items"},
	}
	for _, d := range list {
		date := d.Timestamp
		if ts, ok := ParseTimestamp(d.Timestamp, loc); ok {
			date = ts.Format("02 Jan 2006, 03:04 PM")
		}
		t.Rows = append(t.Rows, []string{
			d.OrderID, d.ShopID, d.RiderName, f.Number(d.CashReceived, 0), d.Status, date, strconv.Itoa(len(d.ReturnItems)),
		})
	}
	return t
}
