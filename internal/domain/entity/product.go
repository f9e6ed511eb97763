package entity

import "github.com/shopspring/decimal"

// Product artículo del catálogo de venta.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Shop tienda cliente a la que se le toman pedidos.
type Shop struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Area  string `json:"area"`
}

// Vendor proveedor de productos.
type Vendor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Catalogue datos estáticos compilados en el agente: productos, tiendas y proveedores.
type Catalogue struct {
	Products []Product `json:"products"`
	Shops    []Shop    `json:"shops"`
	Vendors  []Vendor  `json:"vendors"`
}

// Product busca un producto por id.
func (c *Catalogue) Product(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Shop busca una tienda por id.
func (c *Catalogue) Shop(id string) (Shop, bool) {
	for _, s := range c.Shops {
		if s.ID == id {
			return s, true
		}
	}
	return Shop{}, false
}

// VendorByName resuelve el proveedor por nombre exacto.
func (c *Catalogue) VendorByName(name string) (Vendor, bool) {
	for _, v := range c.Vendors {
		if v.Name == name {
			return v, true
		}
	}
	return Vendor{}, false
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultCatalogue catálogo compilado.
func DefaultCatalogue() *Catalogue {
	return &Catalogue{
		Products: []Product{
			{"P001", "Coca-Cola 330ml", price("102")},
			{"P002", "Lays Chips 50g", price("36")},
			{"P003", "Mineral Water 500ml", price("26.4")},
			{"P004", "Bread Loaf", price("66")},
			{"P005", "Milk 1L", price("168")},
			{"P006", "Chocolate Bar", price("90")},
			{"P007", "Instant Noodles", price("54")},
			{"P008", "Toothpaste", price("144")},
			{"P009", "Shampoo 250ml", price("216")},
			{"P010", "Soap Bar", price("78")},
			{"P011", "Cooking Oil 1L", price("336")},
			{"P012", "Sugar 1kg", price("132")},
			{"P013", "Tea Bags 100pcs", price("420")},
			{"P014", "Flour 5kg", price("312")},
			{"P015", "Rice Basmati 5kg", price("900")},
			{"P016", "Salt 800g", price("36")},
			{"P017", "Detergent Powder 1kg", price("216")},
			{"P018", "Dishwashing Liquid 500ml", price("108")},
			{"P019", "Match Box", price("12")},
			{"P020", "Biscuit Pack 100g", price("24")},
			{"P021", "Hand Wash 250ml", price("108")},
			{"P022", "Tissue Box", price("144")},
			{"P023", "Battery AA (2pcs)", price("72")},
			{"P024", "Black Pepper 100g", price("96")},
			{"P025", "Red Chili Powder 250g", price("144")},
			{"P026", "Corn Flakes 250g", price("216")},
			{"P027", "Laundry Soap Bar", price("42")},
			{"P028", "Shaving Foam", price("240")},
			{"P029", "Toilet Cleaner 500ml", price("132")},
			{"P030", "Fruit Juice 1L", price("168")},
		},
		Shops: []Shop{
			{"SHP-001", "City Supermarket", "Waqas Ali", "Downtown"},
			{"SHP-002", "Corner Store", "Ali Raza", "Market Road"},
			{"SHP-003", "Mega Mart", "Sarah Khan", "Shopping Mall"},
			{"SHP-004", "Daily Needs", "Ahmed Hassan", "Residential Area"},
			{"SHP-005", "Super Value", "Fatima Noor", "Commercial Street"},
			{"SHP-006", "Quick Mart", "Usman Tariq", "Main Bazaar"},
			{"SHP-007", "Family Store", "Hassan Ahmed", "Gulberg"},
			{"SHP-008", "24/7 Mart", "Rehan Siddiqui", "Cantt"},
			{"SHP-009", "Fresh Foods", "Ayesha Malik", "Model Town"},
			{"SHP-010", "Super Save", "Adnan Sharif", "Liberty"},
			{"SHP-011", "Value Plus", "Maria Iqbal", "Johar Town"},
			{"SHP-012", "City Center", "Hamza Ali", "Faisal Town"},
			{"SHP-013", "Mega Value", "Sana Javed", "Wapda Town"},
			{"SHP-014", "Daily Mart", "Salman Khan", "Garden Town"},
			{"SHP-015", "Super Market", "John Doe", "Defence"},
		},
		Vendors: []Vendor{
			{"V001", "Coca Cola Beverages Ltd", "Soft Drinks / Juices"},
			{"V002", "PepsiCo Foods", "Snacks / Chips"},
			{"V003", "Nestlé Pakistan", "Dairy / Cereals / Baby Food"},
			{"V004", "National Foods Pvt Ltd", "Grocery / Spices / Cooking Items"},
			{"V005", "Unilever Pakistan", "Home & Personal Care"},
		},
	}
}

// Motivos de devolución aceptados por el formulario de entrega.
var ReturnReasons = []string{"Expired", "Damaged", "Wrong Item", "Shop Rejected", "Overstock"}

// Roles de staff aceptados en el alta de empleados.
var StaffRoles = []string{"Booker", "Manager", "Rider", "Other"}
