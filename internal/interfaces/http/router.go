package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-distribution/internal/application/board"
	"github.com/jhoicas/smart-distribution/internal/application/forms"
	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/application/session"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/pkg/format"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC *session.UseCase
	FormsUC   *forms.UseCase
	Board     *board.Board
	Reports   ports.ReportRenderer
	Formatter *format.Formatter
	Location  *time.Location // zona para filtros por fecha y exportaciones; nil = local
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	admin := RequireRole(entity.RoleAdmin)
	sales := RequireRole(entity.RoleSales)
	rider := RequireRole(entity.RoleRider)

	// Auth (login público)
	authHandler := NewAuthHandler(deps.SessionUC, deps.Board)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de la sesión activa)
	protected := api.Group("/", AuthMiddleware(deps.SessionUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Vistas: el control de acceso por rol lo hace el tablero según la vista
	viewHandler := NewViewHandler(deps.Board, deps.Reports, deps.Formatter, deps.Location)
	views := protected.Group("/views")
	views.Get("/", viewHandler.List)
	views.Get("/sales-dashboard/orders", sales, viewHandler.SalesOrders)
	views.Get("/:name", viewHandler.Get)
	views.Delete("/:name", viewHandler.Unmount)
	views.Post("/:name/mount", viewHandler.Mount)
	views.Post("/:name/retry", viewHandler.Retry)
	views.Get("/:name/deliveries", viewHandler.Deliveries)
	views.Get("/:name/export.csv", viewHandler.ExportCSV)
	views.Get("/:name/export.pdf", viewHandler.ExportPDF)

	formsHandler := NewFormsHandler(deps.FormsUC, deps.Board)
	protected.Get("/catalogue", formsHandler.Catalogue)

	// Pedido (vendedor)
	orders := protected.Group("/orders", sales)
	orders.Get("/draft", formsHandler.OrderDraft)
	orders.Delete("/draft", formsHandler.ResetOrder)
	orders.Post("/draft/items", formsHandler.AddOrderItem)
	orders.Put("/draft/items/:productId", formsHandler.SetOrderQuantity)
	orders.Delete("/draft/items/:productId", formsHandler.RemoveOrderItem)
	orders.Put("/draft/shop", formsHandler.SelectShop)
	orders.Post("/submit", formsHandler.SubmitOrder)

	// Entrega (rider)
	deliveries := protected.Group("/deliveries", rider)
	deliveries.Get("/draft", formsHandler.DeliveryDraft)
	deliveries.Put("/draft", formsHandler.UpdateDelivery)
	deliveries.Delete("/draft", formsHandler.ResetDelivery)
	deliveries.Get("/lookup/:orderId", formsHandler.LookupOrder)
	deliveries.Post("/draft/prefill", formsHandler.PrefillReturns)
	deliveries.Post("/draft/returns", formsHandler.AddReturnItem)
	deliveries.Put("/draft/returns/:index", formsHandler.UpdateReturnItem)
	deliveries.Delete("/draft/returns/:index", formsHandler.RemoveReturnItem)
	deliveries.Post("/submit", formsHandler.SubmitDelivery)

	// Altas y diario (administrador)
	protected.Post("/products", admin, formsHandler.SubmitProduct)
	protected.Post("/staff", admin, formsHandler.SubmitStaff)
	protected.Get("/submissions", admin, formsHandler.Submissions)
}
