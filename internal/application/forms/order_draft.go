package forms

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// OrderLine línea del borrador de pedido.
type OrderLine struct {
	Product  entity.Product
	Quantity int
}

// LineTotal precio × cantidad.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderDraft pedido en construcción por un vendedor.
type OrderDraft struct {
	Shop  *entity.Shop
	Lines []OrderLine
}

// Add agrega qty unidades de p; si el producto ya está en el borrador suma la cantidad.
func (d *OrderDraft) Add(p entity.Product, qty int) error {
	if qty < 1 {
		return invalid(MsgQuantityMin)
	}
	for i := range d.Lines {
		if d.Lines[i].Product.ID == p.ID {
			d.Lines[i].Quantity += qty
			return nil
		}
	}
	d.Lines = append(d.Lines, OrderLine{Product: p, Quantity: qty})
	return nil
}

// SetQuantity reemplaza la cantidad de una línea existente.
func (d *OrderDraft) SetQuantity(productID string, qty int) error {
	if qty < 1 {
		return invalid(MsgQuantityMin)
	}
	for i := range d.Lines {
		if d.Lines[i].Product.ID == productID {
			d.Lines[i].Quantity = qty
			return nil
		}
	}
	return invalid(MsgUnknownItem)
}

// Remove quita la línea del producto.
func (d *OrderDraft) Remove(productID string) error {
	for i := range d.Lines {
		if d.Lines[i].Product.ID == productID {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return nil
		}
	}
	return invalid(MsgUnknownItem)
}

// Total suma de los totales de línea.
func (d *OrderDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Validate tienda elegida y al menos una línea.
func (d *OrderDraft) Validate() error {
	if d.Shop == nil {
		return invalid(MsgSelectShop)
	}
	if len(d.Lines) == 0 {
		return invalid(MsgAddProduct)
	}
	return nil
}

type orderItemPayload struct {
	ProductID string `json:"Product_ID"`
	Qty       int    `json:"Qty"`
}

type orderPayload struct {
	ShopID        string             `json:"Shop_ID"`
	SalesmanID    string             `json:"Salesman_ID"`
	SalesmanName  string             `json:"Salesman_name"`
	ShopOwnerName string             `json:"Shop_Owner_Name"`
	TotalAmount   jsonNumber         `json:"Total_Amount"`
	Items         []orderItemPayload `json:"Items"`
}

func (d *OrderDraft) payload(ident *entity.Identity) orderPayload {
	items := make([]orderItemPayload, 0, len(d.Lines))
	for _, l := range d.Lines {
		items = append(items, orderItemPayload{ProductID: l.Product.ID, Qty: l.Quantity})
	}
	return orderPayload{
		ShopID:        d.Shop.ID,
		SalesmanID:    ident.ID,
		SalesmanName:  ident.Name,
		ShopOwnerName: d.Shop.Owner,
		TotalAmount:   jsonNumber(d.Total()),
		Items:         items,
	}
}

func (d *OrderDraft) clone() OrderDraft {
	c := OrderDraft{Lines: append([]OrderLine(nil), d.Lines...)}
	if d.Shop != nil {
		s := *d.Shop
		c.Shop = &s
	}
	return c
}

// jsonNumber serializa un decimal como número JSON (el backend espera números, no strings).
type jsonNumber decimal.Decimal

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}
