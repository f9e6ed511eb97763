package resources

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"1/2/2006, 3:04:05 PM",
	"1/2/2006",
}

// ParseTimestamp interpreta las fechas que envía el backend (ISO, fecha sola o formato de
// navegador). Las fechas sin zona se toman en loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AllValues valor de filtro que desactiva el filtro de estado o rider.
const AllValues = "all"

// DeliveryFilter filtros de la vista de entregas. From y To son fechas (se ignora la hora);
// To incluye el día completo.
type DeliveryFilter struct {
	Status  string
	RiderID string
	ShopID  string // subcadena
	From    time.Time
	To      time.Time
}

// FilterDeliveries aplica f. Las entregas con fecha ilegible no se excluyen por rango de fechas.
func FilterDeliveries(list []entity.Delivery, f DeliveryFilter, loc *time.Location) []entity.Delivery {
	if loc == nil {
		loc = time.Local
	}
	var from, to time.Time
	if !f.From.IsZero() {
		from = startOfDay(f.From, loc)
	}
	if !f.To.IsZero() {
		to = startOfDay(f.To, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	out := make([]entity.Delivery, 0, len(list))
	for _, d := range list {
		if f.Status != "" && f.Status != AllValues && d.Status != f.Status {
			continue
		}
		if f.RiderID != "" && f.RiderID != AllValues && d.RiderID != f.RiderID {
			continue
		}
		if f.ShopID != "" && !strings.Contains(d.ShopID, f.ShopID) {
			continue
		}
		if !from.IsZero() || !to.IsZero() {
			if ts, ok := ParseTimestamp(d.Timestamp, loc); ok {
				if !from.IsZero() && ts.Before(from) {
					continue
				}
				if !to.IsZero() && ts.After(to) {
					continue
				}
			}
		}
		out = append(out, d)
	}
	return out
}

// Riders ids de rider distintos, ordenados, para el selector de filtro.
func Riders(list []entity.Delivery) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, d := range list {
		if d.RiderID == "" {
			continue
		}
		if _, ok := seen[d.RiderID]; ok {
			continue
		}
		seen[d.RiderID] = struct{}{}
		out = append(out, d.RiderID)
	}
	sort.Strings(out)
	return out
}

// Period ventana de tiempo del tablero de ventas.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod valida p; vacío equivale a today.
func ParsePeriod(p string) (Period, bool) {
	switch Period(p) {
	case "":
		return PeriodToday, true
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return Period(p), true
	}
	return "", false
}

// FilterByPeriod pedidos desde el inicio de hoy, hace 7 días o hace un mes (contando desde la
// medianoche de now). Con fecha ilegible el pedido solo aparece en PeriodAll.
func FilterByPeriod(orders []entity.Order, p Period, now time.Time) []entity.Order {
	if p == PeriodAll {
		return append([]entity.Order(nil), orders...)
	}
	today := startOfDay(now, now.Location())
	var since time.Time
	switch p {
	case PeriodWeek:
		since = today.AddDate(0, 0, -7)
	case PeriodMonth:
		since = today.AddDate(0, -1, 0)
	default:
		since = today
	}

	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		ts, ok := ParseTimestamp(o.OrderDate, now.Location())
		if ok && !ts.Before(since) {
			out = append(out, o)
		}
	}
	return out
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
