// Package pdf exporta las vistas del tablero como reportes tabulares en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Smart Distribution + título  │  Autor + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTACADOS: etiqueta / valor (opcional)                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por encabezado, filas alternadas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de filas                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const brand = "Smart Distribution"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RenderTable genera el PDF de la tabla y devuelve sus bytes.
func (g *MarotoReportGenerator) RenderTable(_ context.Context, table dto.Table, meta dto.ReportMeta) ([]byte, error) {
	if len(table.Headers) == 0 {
		return nil, fmt.Errorf("pdf: la tabla %q no tiene columnas", table.Title)
	}
	grid := len(table.Headers)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(grid).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(table.Title, true).
		WithAuthor(nonEmpty(meta.Author, brand), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(table.Title, meta, grid))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if len(meta.Highlights) > 0 {
		m.AddRows(highlightRows(meta.Highlights, grid)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow(table.Headers))
	m.AddRows(tableBodyRows(table.Rows, grid)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(table.Rows), grid))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca + título (izq) y autor + fecha (der). Con una sola columna va todo apilado.
func headerRow(title string, meta dto.ReportMeta, grid int) core.Row {
	left, right := grid, 0
	if grid > 1 {
		right = grid / 2
		left = grid - right
	}
	r := row.New(18)
	r.Add(col.New(left).Add(
		text.New(brand, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		text.New(title, props.Text{Size: 10, Top: 9, Color: colorGray}),
	))
	if right > 0 {
		generated := "—"
		if !meta.GeneratedAt.IsZero() {
			generated = meta.GeneratedAt.Format("02 Jan 2006, 03:04 PM")
		}
		r.Add(col.New(right).Add(
			text.New("Generado por: "+nonEmpty(meta.Author, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Fecha: "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		))
	}
	return r
}

// highlightRows: un renglón etiqueta/valor por destacado.
func highlightRows(items []dto.KeyValue, grid int) []core.Row {
	label := grid / 2
	if label == 0 {
		label = grid
	}
	rows := make([]core.Row, 0, len(items))
	for _, kv := range items {
		r := row.New(6)
		r.Add(col.New(label).Add(text.New(kv.Label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})))
		if grid-label > 0 {
			r.Add(col.New(grid - label).Add(text.New(kv.Value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})))
		}
		rows = append(rows, r)
	}
	return rows
}

// tableHeaderRow: encabezados en blanco sobre el color primario.
func tableHeaderRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(1).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

// tableBodyRows: una fila por registro, con fondo alternado. Celdas faltantes quedan vacías.
func tableBodyRows(data [][]string, grid int) []core.Row {
	result := make([]core.Row, 0, len(data))
	for i, cells := range data {
		cols := make([]core.Col, 0, grid)
		for c := 0; c < grid; c++ {
			v := ""
			if c < len(cells) {
				v = cells[c]
			}
			cols = append(cols, col.New(1).Add(text.New(v, props.Text{Size: 7.5, Top: 1, Left: 1, Right: 1})))
		}
		r := row.New(7).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// footerRow: total de filas exportadas.
func footerRow(n, grid int) core.Row {
	return row.New(8).Add(col.New(grid).Add(
		text.New(fmt.Sprintf("%d registro(s)", n), props.Text{
			Size: 7, Align: align.Right, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
