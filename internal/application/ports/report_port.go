package ports

import (
	"context"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
)

// ReportRenderer define el puerto de salida para exportar una vista como documento.
type ReportRenderer interface {
	RenderTable(ctx context.Context, table dto.Table, meta dto.ReportMeta) ([]byte, error)
}
