package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// MinOrderIDLookupLength los ids más cortos no disparan la búsqueda del pedido.
const MinOrderIDLookupLength = 6

// ReturnLine ítem devuelto en el borrador. MaxQty > 0 cuando viene precargado del pedido.
type ReturnLine struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Qty         int    `json:"qty"`
	MaxQty      int    `json:"max_qty,omitempty"`
	Reason      string `json:"reason"`
	Action      string `json:"action"`
}

func (r ReturnLine) complete() bool {
	return r.ProductID != "" && r.Qty > 0 && r.Reason != ""
}

// DeliveryDraft actualización de entrega en construcción por un rider.
type DeliveryDraft struct {
	ShopID       string               `json:"shop_id"`
	OrderID      string               `json:"order_id"`
	CashReceived decimal.Decimal      `json:"cash_received"`
	Status       string               `json:"status"`
	HasReturns   bool                 `json:"has_returns"`
	Returns      []ReturnLine         `json:"return_items"`
	Order        *entity.OrderDetails `json:"order,omitempty"`
}

// NewDeliveryDraft borrador vacío con estado Delivered.
func NewDeliveryDraft() DeliveryDraft {
	return DeliveryDraft{Status: entity.DeliveryStatusDelivered, Returns: []ReturnLine{}}
}

// SetHeader actualiza los campos de cabecera. Un order_id distinto descarta el pedido buscado.
func (d *DeliveryDraft) SetHeader(shopID, orderID string, cash decimal.Decimal, status string, hasReturns bool) error {
	status = strings.TrimSpace(status)
	if status == "" {
		status = entity.DeliveryStatusDelivered
	}
	if !entity.ValidDeliveryStatus(status) {
		return invalid(MsgInvalidStatus)
	}
	orderID = strings.TrimSpace(orderID)
	if orderID != d.OrderID {
		d.Order = nil
	}
	d.ShopID = strings.TrimSpace(shopID)
	d.OrderID = orderID
	d.CashReceived = cash
	d.Status = status
	d.HasReturns = hasReturns
	return nil
}

// ApplyOrder precarga tienda y efectivo desde el pedido encontrado.
func (d *DeliveryDraft) ApplyOrder(o entity.OrderDetails) {
	d.Order = &o
	if o.Order.ShopID != "" {
		d.ShopID = o.Order.ShopID
	}
	d.CashReceived = o.Order.TotalAmount
}

// PrefillReturns carga un ítem por producto del pedido, con cantidad vacía para completar.
// Devuelve cuántos productos se precargaron.
func (d *DeliveryDraft) PrefillReturns() int {
	if d.Order == nil || len(d.Order.Products) == 0 {
		return 0
	}
	d.Returns = make([]ReturnLine, 0, len(d.Order.Products))
	for _, p := range d.Order.Products {
		d.Returns = append(d.Returns, ReturnLine{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			MaxQty:      int(p.Quantity),
			Action:      entity.ReturnActionRestock,
		})
	}
	d.HasReturns = true
	return len(d.Returns)
}

// AddReturn agrega un ítem completo (producto, cantidad > 0 y motivo).
func (d *DeliveryDraft) AddReturn(r ReturnLine) error {
	if !r.complete() {
		return invalid(MsgReturnFields)
	}
	if err := normalizeAction(&r); err != nil {
		return err
	}
	d.Returns = append(d.Returns, r)
	return nil
}

// UpdateReturn edita cantidad, motivo y acción del ítem index.
func (d *DeliveryDraft) UpdateReturn(index, qty int, reason, action string) error {
	if index < 0 || index >= len(d.Returns) {
		return invalid(MsgUnknownItem)
	}
	r := d.Returns[index]
	if qty < 0 {
		return invalid(MsgReturnFields)
	}
	if r.MaxQty > 0 && qty > r.MaxQty {
		return invalid(MsgReturnExceedsQty)
	}
	r.Qty, r.Reason, r.Action = qty, reason, action
	if err := normalizeAction(&r); err != nil {
		return err
	}
	d.Returns[index] = r
	return nil
}

// RemoveReturn quita el ítem index.
func (d *DeliveryDraft) RemoveReturn(index int) error {
	if index < 0 || index >= len(d.Returns) {
		return invalid(MsgUnknownItem)
	}
	d.Returns = append(d.Returns[:index], d.Returns[index+1:]...)
	return nil
}

// ValidReturns ítems completos; vacío si el borrador no declara devoluciones.
func (d *DeliveryDraft) ValidReturns() []ReturnLine {
	if !d.HasReturns {
		return []ReturnLine{}
	}
	out := make([]ReturnLine, 0, len(d.Returns))
	for _, r := range d.Returns {
		if r.complete() {
			out = append(out, r)
		}
	}
	return out
}

// Validate tienda, pedido y estado obligatorios; con devoluciones declaradas debe haber al
// menos un ítem completo.
func (d *DeliveryDraft) Validate() error {
	if d.ShopID == "" || d.OrderID == "" || d.Status == "" {
		return invalid(MsgRequiredFields)
	}
	if d.HasReturns && len(d.ValidReturns()) == 0 {
		return invalid(MsgReturnsMissing)
	}
	return nil
}

type returnItemPayload struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Qty         int    `json:"qty"`
	Reason      string `json:"reason"`
	Action      string `json:"action"`
}

type deliveryPayload struct {
	ShopID       string              `json:"shop_id"`
	OrderID      string              `json:"order_id"`
	CashReceived jsonNumber          `json:"cash_received"`
	Status       string              `json:"status"`
	ReturnItems  []returnItemPayload `json:"return_items"`
	RiderID      string              `json:"rider_id"`
	RiderName    string              `json:"rider_name"`
}

func (d *DeliveryDraft) payload(ident *entity.Identity) deliveryPayload {
	valid := d.ValidReturns()
	items := make([]returnItemPayload, 0, len(valid))
	for _, r := range valid {
		items = append(items, returnItemPayload{
			ProductID: r.ProductID, ProductName: r.ProductName, Qty: r.Qty, Reason: r.Reason, Action: r.Action,
		})
	}
	return deliveryPayload{
		ShopID:       d.ShopID,
		OrderID:      d.OrderID,
		CashReceived: jsonNumber(d.CashReceived),
		Status:       d.Status,
		ReturnItems:  items,
		RiderID:      ident.ID,
		RiderName:    ident.Name,
	}
}

func (d *DeliveryDraft) clone() DeliveryDraft {
	c := *d
	c.Returns = append([]ReturnLine{}, d.Returns...)
	if d.Order != nil {
		o := *d.Order
		c.Order = &o
	}
	return c
}

func normalizeAction(r *ReturnLine) error {
	switch r.Action {
	case "":
		r.Action = entity.ReturnActionRestock
	case entity.ReturnActionRestock, entity.ReturnActionDiscard:
	default:
		return invalid(MsgInvalidAction)
	}
	return nil
}
