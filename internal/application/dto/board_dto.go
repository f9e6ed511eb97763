package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// ViewInfo vista del tablero disponible para la identidad activa.
type ViewInfo struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Roles    []string `json:"roles"`
	Resource string   `json:"resource,omitempty"`
	Mounted  bool     `json:"mounted"`
}

// Table vista tabular de un recurso para exportar (PDF o CSV).
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// ReportMeta datos de cabecera del reporte exportado.
type ReportMeta struct {
	Author      string     `json:"author"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Highlights  []KeyValue `json:"highlights,omitempty"`
}

// KeyValue par etiqueta/valor mostrado sobre la tabla.
type KeyValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DeliveriesViewResponse entregas filtradas con sus estadísticas y los riders disponibles para filtrar.
type DeliveriesViewResponse struct {
	Stats      entity.DeliveryStats `json:"stats"`
	Deliveries []entity.Delivery    `json:"deliveries"`
	Riders     []string             `json:"riders"`
}

// TargetProgressResponse avance contra la meta mensual de ventas.
type TargetProgressResponse struct {
	Target    decimal.Decimal `json:"target"`
	Achieved  decimal.Decimal `json:"achieved"`
	Percent   int64           `json:"percent"`
	Bar       int64           `json:"bar"`
	Remaining decimal.Decimal `json:"remaining"`
}

// StaffOrdersViewResponse pedidos del vendedor en el período pedido.
type StaffOrdersViewResponse struct {
	Period string                 `json:"period"`
	Stats  entity.StaffOrderStats `json:"stats"`
	Orders []entity.Order         `json:"orders"`
	Target TargetProgressResponse `json:"target"`
}
