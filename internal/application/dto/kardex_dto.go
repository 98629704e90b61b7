package dto

import (
	"time"

	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

// CreateMovementRequest alta administrativa de un asiento de kardex
// (POST /api/kardex). El caller aporta el stock_resultado: este camino NO
// recalcula ni valida contra el stock actual del producto (relleno histórico).
type CreateMovementRequest struct {
	Fecha          *time.Time `json:"fecha"`
	Producto       string     `json:"producto"`
	Cantidad       int        `json:"cantidad"`
	TipoMovimiento string     `json:"tipo_movimiento"`
	Rack           string     `json:"rack"`
	Nivel          string     `json:"nivel"`
	StockResultado int        `json:"stock_resultado"`
}

// Validate aplica las reglas de un asiento de kardex.
func (r *CreateMovementRequest) Validate() []string {
	var errs []string
	if r.Producto == "" {
		errs = append(errs, "producto es requerido")
	}
	if r.Cantidad < 1 {
		errs = append(errs, "cantidad debe ser un número entero positivo")
	}
	if !entity.IsValidMovementType(r.TipoMovimiento) {
		errs = append(errs, "tipo_movimiento debe ser ENTRADA o SALIDA")
	}
	errs = appendRequired(errs, "rack", r.Rack, 20)
	errs = appendRequired(errs, "nivel", r.Nivel, 20)
	if r.StockResultado < 0 {
		errs = append(errs, "stock_resultado debe ser un entero no negativo")
	}
	return errs
}

// MovementResponse salida de un movimiento con los datos del producto del JOIN.
type MovementResponse struct {
	IDMovimiento   int64     `json:"id_movimiento"`
	Fecha          time.Time `json:"fecha"`
	Producto       string    `json:"producto"`
	Cantidad       int       `json:"cantidad"`
	TipoMovimiento string    `json:"tipo_movimiento"`
	Rack           string    `json:"rack"`
	Nivel          string    `json:"nivel"`
	StockResultado int       `json:"stock_resultado"`
	CreatedAt      time.Time `json:"created_at"`
	ProductoTipo   string    `json:"producto_tipo,omitempty"`
	Familia        string    `json:"familia,omitempty"`
	Clase          string    `json:"clase,omitempty"`
	Modelo         string    `json:"modelo,omitempty"`
	Marca          string    `json:"marca,omitempty"`
}

// StatsTotalsResponse totales de una clase de movimiento.
type StatsTotalsResponse struct {
	Total         int64 `json:"total"`
	CantidadTotal int64 `json:"cantidad_total"`
}

// StatsGroupResponse una fila del desglose tipo × tipo_movimiento.
type StatsGroupResponse struct {
	Tipo           string `json:"tipo"`
	TipoMovimiento string `json:"tipo_movimiento"`
	Total          int64  `json:"total"`
	CantidadTotal  int64  `json:"cantidad_total"`
}

// StatsResponse estadísticas del kardex.
type StatsResponse struct {
	Entradas StatsTotalsResponse  `json:"entradas"`
	Salidas  StatsTotalsResponse  `json:"salidas"`
	PorTipo  []StatsGroupResponse `json:"por_tipo"`
}
