package repository

import (
	"time"

	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para los movimientos de kardex.
// El kardex es append-only: no existe Update. Delete es una operación administrativa
// que no toca el stock del producto ni recalcula stock_resultado de asientos posteriores.
type MovementRepository interface {
	// GetAll lista movimientos con datos del producto, ordenados por fecha
	// descendente; productoTipo vacío lista todos.
	GetAll(productoTipo string) ([]*entity.MovementWithProduct, error)
	GetByProduct(idGenerado string) ([]*entity.MovementWithProduct, error)
	GetByID(id int64) (*entity.MovementWithProduct, error)
	// Create inserta el asiento y asigna IDMovimiento en la entidad.
	// El caller es responsable de que StockResultado sea correcto.
	Create(m *entity.Movement) error
	// GetStats agrega totales de entradas, salidas y el desglose por tipo de
	// producto × tipo de movimiento. desde/hasta nil = sin filtro de fechas.
	GetStats(desde, hasta *time.Time) (*entity.MovementStats, error)
	Delete(id int64) error
}
