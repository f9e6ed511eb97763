package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smart-distribution/internal/application/board"
	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/forms"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// FormsHandler borradores de pedido y entrega, altas de producto y empleado.
type FormsHandler struct {
	uc    *forms.UseCase
	board *board.Board
}

// NewFormsHandler construye el handler de formularios.
func NewFormsHandler(uc *forms.UseCase, b *board.Board) *FormsHandler {
	return &FormsHandler{uc: uc, board: b}
}

func orderDraftResponse(d forms.OrderDraft) dto.OrderDraftResponse {
	out := dto.OrderDraftResponse{Items: make([]dto.OrderLineResponse, 0, len(d.Lines)), TotalAmount: d.Total()}
	if d.Shop != nil {
		out.ShopID, out.ShopName, out.ShopOwner = d.Shop.ID, d.Shop.Name, d.Shop.Owner
	}
	for _, l := range d.Lines {
		out.Items = append(out.Items, dto.OrderLineResponse{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Price:       l.Product.Price,
			Quantity:    l.Quantity,
			LineTotal:   l.LineTotal(),
		})
	}
	return out
}

func orderDraftOrError(c *fiber.Ctx, d forms.OrderDraft, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orderDraftResponse(d))
}

func deliveryDraftOrError(c *fiber.Ctx, d forms.DeliveryDraft, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d)
}

func submitted(c *fiber.Ctx, s *entity.Submission, msg string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SubmissionResponse{ID: s.ID.String(), Message: msg})
}

// Catalogue godoc
// @Summary      Catálogo estático
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CatalogueResponse
// @Router       /api/catalogue [get]
func (h *FormsHandler) Catalogue(c *fiber.Ctx) error {
	cat := h.uc.Catalogue()
	return c.JSON(dto.CatalogueResponse{
		Products:      cat.Products,
		Shops:         cat.Shops,
		Vendors:       cat.Vendors,
		ReturnReasons: entity.ReturnReasons,
		StaffRoles:    entity.StaffRoles,
		DeliveryStatuses: []string{
			entity.DeliveryStatusDelivered, entity.DeliveryStatusPartialReturn,
			entity.DeliveryStatusFullyReturned, entity.DeliveryStatusFailed,
		},
	})
}

// ── Pedido ────────────────────────────────────────────────────────────────────

// OrderDraft godoc
// @Summary      Borrador de pedido
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OrderDraftResponse
// @Router       /api/orders/draft [get]
func (h *FormsHandler) OrderDraft(c *fiber.Ctx) error {
	return c.JSON(orderDraftResponse(h.uc.OrderDraft()))
}

// AddOrderItem godoc
// @Summary      Agregar producto al pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddOrderItemRequest  true  "producto y cantidad"
// @Success      200  {object}  dto.OrderDraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/draft/items [post]
func (h *FormsHandler) AddOrderItem(c *fiber.Ctx) error {
	var in dto.AddOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.AddOrderItem(in.ProductID, in.Quantity)
	return orderDraftOrError(c, d, err)
}

// SetOrderQuantity godoc
// @Summary      Cambiar cantidad
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string                  true  "producto"
// @Param        body       body  dto.SetQuantityRequest  true  "cantidad"
// @Success      200  {object}  dto.OrderDraftResponse
// @Router       /api/orders/draft/items/{productId} [put]
func (h *FormsHandler) SetOrderQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.SetOrderQuantity(c.Params("productId"), in.Quantity)
	return orderDraftOrError(c, d, err)
}

// RemoveOrderItem godoc
// @Summary      Quitar producto
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "producto"
// @Success      200  {object}  dto.OrderDraftResponse
// @Router       /api/orders/draft/items/{productId} [delete]
func (h *FormsHandler) RemoveOrderItem(c *fiber.Ctx) error {
	d, err := h.uc.RemoveOrderItem(c.Params("productId"))
	return orderDraftOrError(c, d, err)
}

// SelectShop godoc
// @Summary      Elegir tienda
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SelectShopRequest  true  "tienda"
// @Success      200  {object}  dto.OrderDraftResponse
// @Router       /api/orders/draft/shop [put]
func (h *FormsHandler) SelectShop(c *fiber.Ctx) error {
	var in dto.SelectShopRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.SelectShop(in.ShopID)
	return orderDraftOrError(c, d, err)
}

// ResetOrder godoc
// @Summary      Vaciar borrador de pedido
// @Tags         orders
// @Security     BearerAuth
// @Success      204
// @Router       /api/orders/draft [delete]
func (h *FormsHandler) ResetOrder(c *fiber.Ctx) error {
	h.uc.ResetOrder()
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitOrder godoc
// @Summary      Enviar pedido
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SubmissionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/orders/submit [post]
func (h *FormsHandler) SubmitOrder(c *fiber.Ctx) error {
	s, err := h.uc.SubmitOrder(c.UserContext(), GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	h.board.Reload(c.UserContext(), board.ViewSalesDashboard)
	return submitted(c, s, forms.MsgOrderSubmitted)
}

// ── Entrega ───────────────────────────────────────────────────────────────────

// DeliveryDraft godoc
// @Summary      Borrador de entrega
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  forms.DeliveryDraft
// @Router       /api/deliveries/draft [get]
func (h *FormsHandler) DeliveryDraft(c *fiber.Ctx) error {
	return c.JSON(h.uc.DeliveryDraft())
}

// UpdateDelivery godoc
// @Summary      Actualizar cabecera de la entrega
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.DeliveryDraftRequest  true  "cabecera"
// @Success      200  {object}  forms.DeliveryDraft
// @Router       /api/deliveries/draft [put]
func (h *FormsHandler) UpdateDelivery(c *fiber.Ctx) error {
	var in dto.DeliveryDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.UpdateDelivery(in)
	return deliveryDraftOrError(c, d, err)
}

// LookupOrder godoc
// @Summary      Buscar pedido para la entrega
// @Description  Ids de menos de 6 caracteres no consultan al backend.
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path  string  true  "pedido"
// @Success      200  {object}  forms.DeliveryDraft
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/deliveries/lookup/{orderId} [get]
func (h *FormsHandler) LookupOrder(c *fiber.Ctx) error {
	if _, err := h.uc.LookupOrder(c.UserContext(), c.Params("orderId")); err != nil {
		if errors.Is(err, forms.ErrDraftChanged) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DRAFT_CHANGED", Message: "Delivery form changed during lookup"})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: forms.UserMessage(err)})
	}
	return c.JSON(h.uc.DeliveryDraft())
}

// PrefillReturns godoc
// @Summary      Precargar devoluciones con los productos del pedido
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PrefillResponse
// @Router       /api/deliveries/draft/prefill [post]
func (h *FormsHandler) PrefillReturns(c *fiber.Ctx) error {
	_, n := h.uc.PrefillReturns()
	msg := "No products found in this order"
	if n > 0 {
		msg = fmt.Sprintf("Pre-filled %d product(s). Update quantities and reasons.", n)
	}
	return c.JSON(dto.PrefillResponse{Prefilled: n, Message: msg})
}

// AddReturnItem godoc
// @Summary      Agregar ítem devuelto
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ReturnItemRequest  true  "ítem"
// @Success      200  {object}  forms.DeliveryDraft
// @Router       /api/deliveries/draft/returns [post]
func (h *FormsHandler) AddReturnItem(c *fiber.Ctx) error {
	var in dto.ReturnItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.AddReturnItem(in)
	return deliveryDraftOrError(c, d, err)
}

// UpdateReturnItem godoc
// @Summary      Editar ítem devuelto
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        index  path  int                    true  "posición"
// @Param        body   body  dto.ReturnItemRequest  true  "cantidad, motivo, acción"
// @Success      200  {object}  forms.DeliveryDraft
// @Router       /api/deliveries/draft/returns/{index} [put]
func (h *FormsHandler) UpdateReturnItem(c *fiber.Ctx) error {
	idx, err := returnIndex(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ReturnItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.UpdateReturnItem(idx, in)
	return deliveryDraftOrError(c, d, err)
}

// RemoveReturnItem godoc
// @Summary      Quitar ítem devuelto
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Param        index  path  int  true  "posición"
// @Success      200  {object}  forms.DeliveryDraft
// @Router       /api/deliveries/draft/returns/{index} [delete]
func (h *FormsHandler) RemoveReturnItem(c *fiber.Ctx) error {
	idx, err := returnIndex(c)
	if err != nil {
		return writeError(c, err)
	}
	d, err := h.uc.RemoveReturnItem(idx)
	return deliveryDraftOrError(c, d, err)
}

func returnIndex(c *fiber.Ctx) (int, error) {
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, fmt.Errorf("%w: índice %q", domain.ErrInvalidInput, c.Params("index"))
	}
	return idx, nil
}

// ResetDelivery godoc
// @Summary      Vaciar borrador de entrega
// @Tags         deliveries
// @Security     BearerAuth
// @Success      204
// @Router       /api/deliveries/draft [delete]
func (h *FormsHandler) ResetDelivery(c *fiber.Ctx) error {
	h.uc.ResetDelivery()
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitDelivery godoc
// @Summary      Enviar actualización de entrega
// @Description  Si el backend acepta, se recarga el historial del rider.
// @Tags         deliveries
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SubmissionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/deliveries/submit [post]
func (h *FormsHandler) SubmitDelivery(c *fiber.Ctx) error {
	s, err := h.uc.SubmitDelivery(c.UserContext(), GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	h.board.Reload(c.UserContext(), board.ViewRiderDashboard)
	h.board.Reload(c.UserContext(), board.ViewDelivery)
	return submitted(c, s, forms.MsgDeliverySubmitted)
}

// ── Producto / empleado ───────────────────────────────────────────────────────

// SubmitProduct godoc
// @Summary      Alta de producto
// @Description  Si el backend acepta, se pide el siguiente id de producto.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ProductRequest  true  "producto"
// @Success      201  {object}  dto.SubmissionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *FormsHandler) SubmitProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.SubmitProduct(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	h.board.Reload(c.UserContext(), board.ViewAddProduct)
	return submitted(c, s, forms.MsgProductSubmitted)
}

// SubmitStaff godoc
// @Summary      Alta de empleado
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.StaffRequest  true  "empleado"
// @Success      201  {object}  dto.SubmissionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *FormsHandler) SubmitStaff(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.uc.SubmitStaff(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return submitted(c, s, forms.MsgStaffSubmitted)
}

// Submissions godoc
// @Summary      Diario de envíos
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "máximo (por defecto 20, tope 100)"
// @Success      200  {array}  entity.Submission
// @Router       /api/submissions [get]
func (h *FormsHandler) Submissions(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0)}
	page.DefaultPage()
	list, err := h.uc.RecentSubmissions(c.UserContext(), page.Limit)
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []*entity.Submission{}
	}
	return c.JSON(list)
}
