package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/pdf"
)

func TestRenderTable_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	table := dto.Table{
		Title:   "Deliveries",
		Headers: []string{"Order ID", "Shop ID", "Rider", "Cash Received", "Status", "Date", "Return Items"},
		Rows: [][]string{
			{"ORD-1", "SHP-001", "Ali", "500", "Delivered", "18 Oct 2026, 10:00 AM", "0"},
			{"ORD-2", "SHP-002", "Usman", "0", "Failed"},
		},
	}
	meta := dto.ReportMeta{
		Author:      "Admin User",
		GeneratedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
		Highlights:  []dto.KeyValue{{Label: "Total Cash", Value: "Rs 500"}},
	}

	out, err := g.RenderTable(context.Background(), table, meta)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento empieza con la firma PDF")
}

func TestRenderTable_UnaColumnaYSinFilas(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	out, err := g.RenderTable(context.Background(), dto.Table{Title: "IDs", Headers: []string{"ID"}}, dto.ReportMeta{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderTable_SinColumnas(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	_, err := g.RenderTable(context.Background(), dto.Table{Title: "vacía"}, dto.ReportMeta{})
	assert.Error(t, err)
}
