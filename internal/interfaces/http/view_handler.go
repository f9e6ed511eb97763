package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-distribution/internal/application/board"
	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/application/resources"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/pkg/format"
)

const dateLayout = "2006-01-02"

// ViewHandler ciclo de vida de las vistas del tablero y sus exportaciones.
type ViewHandler struct {
	board     *board.Board
	reports   ports.ReportRenderer
	formatter *format.Formatter
	loc       *time.Location
	now       func() time.Time
}

// NewViewHandler construye el handler de vistas. loc nil usa la zona local.
func NewViewHandler(b *board.Board, reports ports.ReportRenderer, f *format.Formatter, loc *time.Location) *ViewHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ViewHandler{board: b, reports: reports, formatter: f, loc: loc, now: time.Now}
}

// List godoc
// @Summary      Vistas disponibles para la sesión
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ViewInfo
// @Router       /api/views [get]
func (h *ViewHandler) List(c *fiber.Ctx) error {
	views := h.board.Available()
	if views == nil {
		views = []dto.ViewInfo{}
	}
	return c.JSON(views)
}

// Mount godoc
// @Summary      Montar vista
// @Description  Primera carga del recurso de la vista y arranque del refresco automático.
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre de la vista"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/views/{name}/mount [post]
func (h *ViewHandler) Mount(c *fiber.Ctx) error {
	snap, err := h.board.Mount(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	if snap == nil {
		return c.JSON(fiber.Map{"view": c.Params("name"), "static": true})
	}
	return c.JSON(snap)
}

// Get godoc
// @Summary      Estado de una vista montada
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre de la vista"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/views/{name} [get]
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	snap, err := h.board.Snapshot(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(snap)
}

// Retry godoc
// @Summary      Reintentar carga
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre de la vista"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/views/{name}/retry [post]
func (h *ViewHandler) Retry(c *fiber.Ctx) error {
	snap, err := h.board.Retry(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(snap)
}

// Unmount godoc
// @Summary      Desmontar vista
// @Tags         views
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre de la vista"
// @Success      204
// @Router       /api/views/{name} [delete]
func (h *ViewHandler) Unmount(c *fiber.Ctx) error {
	h.board.Unmount(c.Params("name"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Deliveries godoc
// @Summary      Entregas filtradas
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        name    path   string  true   "delivery | rider-dashboard"
// @Param        status  query  string  false  "estado o all"
// @Param        rider   query  string  false  "rider id o all"
// @Param        shop    query  string  false  "subcadena del shop id"
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD (incluye el día)"
// @Success      200  {object}  dto.DeliveriesViewResponse
// @Router       /api/views/{name}/deliveries [get]
func (h *ViewHandler) Deliveries(c *fiber.Ctx) error {
	name := c.Params("name")
	if name != board.ViewDelivery && name != board.ViewRiderDashboard {
		return writeError(c, fmt.Errorf("%w: %s no lista entregas", domain.ErrUnknownView, name))
	}
	filter, err := h.deliveryFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	snap, err := board.SnapshotOf[entity.DeliveryList](h.board, name)
	if err != nil {
		return writeError(c, err)
	}
	var all []entity.Delivery
	if snap.Payload != nil {
		all = snap.Payload.Deliveries
	}
	list := resources.FilterDeliveries(all, filter, h.loc)
	return c.JSON(dto.DeliveriesViewResponse{
		Stats:      resources.DeliveryStatsOf(list),
		Deliveries: list,
		Riders:     resources.Riders(all),
	})
}

// SalesOrders godoc
// @Summary      Pedidos del vendedor por período
// @Tags         views
// @Produce      json
// @Security     BearerAuth
// @Param        period  query  string  false  "today | week | month | all"
// @Success      200  {object}  dto.StaffOrdersViewResponse
// @Router       /api/views/sales-dashboard/orders [get]
func (h *ViewHandler) SalesOrders(c *fiber.Ctx) error {
	period, ok := resources.ParsePeriod(c.Query("period", string(resources.PeriodAll)))
	if !ok {
		return writeError(c, fmt.Errorf("%w: período %q", domain.ErrInvalidInput, c.Query("period")))
	}
	snap, err := board.SnapshotOf[entity.StaffOrderList](h.board, board.ViewSalesDashboard)
	if err != nil {
		return writeError(c, err)
	}
	var all []entity.Order
	if snap.Payload != nil {
		all = snap.Payload.Orders
	}
	orders := resources.FilterByPeriod(all, period, h.now().In(h.loc))
	stats := resources.StaffOrderStatsOf(orders)
	p := resources.ProgressTowardsTarget(stats.TotalAmount)
	return c.JSON(dto.StaffOrdersViewResponse{
		Period: string(period),
		Stats:  stats,
		Orders: orders,
		Target: dto.TargetProgressResponse{
			Target: p.Target, Achieved: p.Achieved, Percent: p.Percent, Bar: p.Bar, Remaining: p.Remaining,
		},
	})
}

// ExportCSV godoc
// @Summary      Exportar vista a CSV
// @Tags         views
// @Produce      text/csv
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre de la vista"
// @Success      200  {file}  file
// @Router       /api/views/{name}/export.csv [get]
func (h *ViewHandler) ExportCSV(c *fiber.Ctx) error {
	table, err := h.table(c)
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := resources.WriteCSV(&buf, table); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, h.attachment(c.Params("name"), "csv"))
	return c.Send(buf.Bytes())
}

// ExportPDF godoc
// @Summary      Exportar vista a PDF
// @Tags         views
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre de la vista"
// @Success      200  {file}  file
// @Router       /api/views/{name}/export.pdf [get]
func (h *ViewHandler) ExportPDF(c *fiber.Ctx) error {
	table, err := h.table(c)
	if err != nil {
		return writeError(c, err)
	}
	meta := dto.ReportMeta{GeneratedAt: h.now().In(h.loc)}
	if ident := GetIdentity(c); ident != nil {
		meta.Author = ident.Name
	}
	doc, err := h.reports.RenderTable(c.UserContext(), table, meta)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, h.attachment(c.Params("name"), "pdf"))
	return c.Send(doc)
}

func (h *ViewHandler) table(c *fiber.Ctx) (dto.Table, error) {
	filter, err := h.deliveryFilter(c)
	if err != nil {
		return dto.Table{}, err
	}
	period, ok := resources.ParsePeriod(c.Query("period", string(resources.PeriodAll)))
	if !ok {
		return dto.Table{}, fmt.Errorf("%w: período %q", domain.ErrInvalidInput, c.Query("period"))
	}
	return h.board.Table(c.Params("name"), board.TableQuery{
		Formatter: h.formatter,
		Location:  h.loc,
		Now:       h.now().In(h.loc),
		Delivery:  filter,
		Period:    period,
	})
}

func (h *ViewHandler) deliveryFilter(c *fiber.Ctx) (resources.DeliveryFilter, error) {
	f := resources.DeliveryFilter{
		Status:  c.Query("status"),
		RiderID: c.Query("rider"),
		ShopID:  c.Query("shop"),
	}
	var err error
	if f.From, err = h.parseDate(c.Query("from")); err != nil {
		return f, err
	}
	if f.To, err = h.parseDate(c.Query("to")); err != nil {
		return f, err
	}
	return f, nil
}

func (h *ViewHandler) parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, h.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// attachment nombre del archivo exportado: <vista>_YYYY-MM-DD.<ext> (la vista delivery exporta "deliveries").
func (h *ViewHandler) attachment(view, ext string) string {
	if view == board.ViewDelivery {
		view = "deliveries"
	}
	return fmt.Sprintf(`attachment; filename="%s_%s.%s"`, view, h.now().In(h.loc).Format(dateLayout), ext)
}
