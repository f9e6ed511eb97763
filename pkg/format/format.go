// Package format reproduce el formato numérico del tablero: montos agrupados según el locale
// (en-IN agrupa 3 y luego de 2 en 2: 12,34,567), costos unitarios con dos decimales y
// porcentajes guardados como fracción (0–1).
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale locale del tablero cuando la configuración no indica otro.
const DefaultLocale = "en-IN"

// CurrencyPrefix símbolo usado por el tablero para la rupia.
const CurrencyPrefix = "Rs "

// croreThreshold por debajo de este valor de inventario se muestran dos decimales.
var croreThreshold = decimal.NewFromInt(10_000_000)

var hundred = decimal.NewFromInt(100)

// Formatter formatea montos según el locale configurado.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New construye un Formatter a partir de una etiqueta BCP-47 (ej: "en-IN", "en-US").
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("format: locale inválido %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// MustNew igual que New pero entra en pánico si el locale es inválido.
func MustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale devuelve la etiqueta efectiva.
func (f *Formatter) Locale() string { return f.tag.String() }

// Number agrupa según el locale y fija la cantidad de decimales. El redondeo (half away from
// zero) lo hace decimal antes de pasar a float, así el printer solo agrupa.
func (f *Formatter) Number(v decimal.Decimal, places int32) string {
	rounded := v.Round(places)
	abs := rounded.Abs().InexactFloat64()
	out := f.printer.Sprint(number.Decimal(abs, number.Scale(int(places))))
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// Currency monto con prefijo "Rs " y la cantidad de decimales indicada.
// Las cifras de ventas usan 0 decimales.
func (f *Formatter) Currency(v decimal.Decimal, places int32) string {
	n := f.Number(v, places)
	if strings.HasPrefix(n, "-") {
		return "-" + CurrencyPrefix + n[1:]
	}
	return CurrencyPrefix + n
}

// Sales monto de ventas/ganancias: sin decimales.
func (f *Formatter) Sales(v decimal.Decimal) string { return f.Currency(v, 0) }

// UnitCost costo unitario: siempre dos decimales.
func (f *Formatter) UnitCost(v decimal.Decimal) string { return f.Currency(v, 2) }

// InventoryValue dos decimales por debajo de 1 crore, sin decimales desde 1 crore.
func (f *Formatter) InventoryValue(v decimal.Decimal) string {
	if v.Abs().LessThan(croreThreshold) {
		return f.Currency(v, 2)
	}
	return f.Currency(v, 0)
}

// Percent recibe una fracción (0.1234) y devuelve "12.34%".
func Percent(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(2) + "%"
}
