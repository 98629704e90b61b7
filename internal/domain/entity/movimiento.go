package entity

import "time"

// Tipos de movimiento de kardex.
const (
	MovementTypeEntrada = "ENTRADA"
	MovementTypeSalida  = "SALIDA"
)

// IsValidMovementType indica si tipo es ENTRADA o SALIDA.
func IsValidMovementType(tipo string) bool {
	return tipo == MovementTypeEntrada || tipo == MovementTypeSalida
}

// Movement representa un asiento inmutable del kardex: un cambio de stock ya aplicado.
// Producto referencia productos.id_generado; Rack y Nivel son la ubicación del producto
// al momento del movimiento (no se recalculan después). StockResultado es el stock
// del producto después de aplicar este movimiento.
type Movement struct {
	IDMovimiento   int64
	Fecha          time.Time
	Producto       string
	Cantidad       int
	TipoMovimiento string
	Rack           string
	Nivel          string
	StockResultado int
	CreatedAt      time.Time
}

// MovementWithProduct es un movimiento junto con los atributos del producto
// que los listados exponen (JOIN contra productos).
type MovementWithProduct struct {
	Movement
	ProductoTipo string
	Familia      string
	Clase        string
	Modelo       string
	Marca        string
}

// StatsTotals totales de una clase de movimiento: número de asientos y cantidad sumada.
type StatsTotals struct {
	Total         int64
	CantidadTotal int64
}

// StatsGroup una celda del desglose tipo de producto × tipo de movimiento.
type StatsGroup struct {
	ProductoTipo   string
	TipoMovimiento string
	Total          int64
	CantidadTotal  int64
}

// MovementStats estadísticas agregadas del kardex, opcionalmente sobre un rango de fechas.
type MovementStats struct {
	Entradas StatsTotals
	Salidas  StatsTotals
	PorTipo  []StatsGroup
}
