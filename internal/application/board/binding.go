package board

import (
	"context"
	"net/url"
	"time"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/application/resources"
	"github.com/jhoicas/smart-distribution/internal/application/resourcesync"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/pkg/format"
)

// TableQuery parámetros para exportar una vista como tabla.
type TableQuery struct {
	Formatter *format.Formatter
	Location  *time.Location
	Now       time.Time
	Delivery  resources.DeliveryFilter
	Period    resources.Period
}

// handle vista montada, sin importar el tipo de su payload.
type handle interface {
	snapshot() any
	load(ctx context.Context) any
	retry(ctx context.Context) any
	startAutoRefresh() error
	stop()
	table(q TableQuery) (dto.Table, bool)
}

// binding adapta un Syncer[T] a handle. toTable nil = la vista no se exporta.
type binding[T any] struct {
	syncer  *resourcesync.Syncer[T]
	toTable func(T, TableQuery) dto.Table
}

func bind[T any](res resourcesync.Resource[T], toTable func(T, TableQuery) dto.Table) factory {
	return func(params url.Values, f ports.Fetcher, s ports.Scheduler, opts ...resourcesync.Option) handle {
		return &binding[T]{syncer: resourcesync.New(res, params, f, s, opts...), toTable: toTable}
	}
}

func (b *binding[T]) snapshot() any                 { return b.syncer.Snapshot() }
func (b *binding[T]) load(ctx context.Context) any  { return b.syncer.Load(ctx) }
func (b *binding[T]) retry(ctx context.Context) any { return b.syncer.Retry(ctx) }
func (b *binding[T]) startAutoRefresh() error       { return b.syncer.StartAutoRefresh(0) }
func (b *binding[T]) stop()                         { b.syncer.Stop() }

func (b *binding[T]) table(q TableQuery) (dto.Table, bool) {
	if b.toTable == nil {
		return dto.Table{}, false
	}
	snap := b.syncer.Snapshot()
	if snap.Payload == nil {
		return dto.Table{}, false
	}
	return b.toTable(*snap.Payload, q), true
}

type factory func(params url.Values, f ports.Fetcher, s ports.Scheduler, opts ...resourcesync.Option) handle

// factories un constructor por recurso; cada uno fija el tipo de payload y su tabla.
var factories = map[string]factory{
	resources.Dashboard: bind(resources.DashboardResource(), func(d entity.DashboardSummary, q TableQuery) dto.Table {
		return resources.DashboardTable(d, q.Formatter)
	}),
	resources.TodayCustomers: bind(resources.TodayCustomersResource(), func(c entity.CustomerList, q TableQuery) dto.Table {
		return resources.CustomersTable(c, q.Formatter)
	}),
	resources.TodayOrders: bind(resources.TodayOrdersResource(), func(o entity.OrderList, q TableQuery) dto.Table {
		return resources.OrdersTable("Today's Orders", o.Orders, q.Formatter)
	}),
	resources.Purchases: bind(resources.PurchasesResource(), func(p entity.PurchaseAnalysis, q TableQuery) dto.Table {
		return resources.PurchasesTable(p, q.Formatter)
	}),
	resources.AllDeliveries: bind(resources.AllDeliveriesResource(), deliveriesTable),
	resources.RiderDeliveries: bind(resources.RiderDeliveriesResource(), deliveriesTable),
	resources.StaffOrders: bind(resources.StaffOrdersResource(), func(o entity.StaffOrderList, q TableQuery) dto.Table {
		period := q.Period
		if period == "" {
			period = resources.PeriodAll
		}
		return resources.OrdersTable("My Orders", resources.FilterByPeriod(o.Orders, period, q.Now), q.Formatter)
	}),
	resources.NextProductID: bind[entity.NextProductID](resources.NextProductIDResource(), nil),
}

func deliveriesTable(l entity.DeliveryList, q TableQuery) dto.Table {
	return resources.DeliveriesTable(resources.FilterDeliveries(l.Deliveries, q.Delivery, q.Location), q.Formatter, q.Location)
}
