package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/suanlabs/inventario-api/internal/domain"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `mk.id_movimiento, mk.fecha, mk.producto, mk.cantidad,
	mk.tipo_movimiento, mk.rack, mk.nivel, mk.stock_resultado, mk.created_at,
	p.tipo AS producto_tipo, p.familia, p.clase, p.modelo, p.marca`

const movementFrom = ` FROM movimientos_kardex mk
	JOIN productos p ON mk.producto = p.id_generado`

// MovementRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del kardex. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// GetAll lista movimientos con los datos del producto, por fecha descendente;
// productoTipo vacío lista todos.
func (r *MovementRepo) GetAll(productoTipo string) ([]*entity.MovementWithProduct, error) {
	query := `SELECT ` + movementColumns + movementFrom
	var args []any
	if productoTipo != "" {
		query += ` WHERE p.tipo = $1`
		args = append(args, productoTipo)
	}
	query += ` ORDER BY mk.fecha DESC`
	return r.list(query, args...)
}

// GetByProduct lista los movimientos de un producto por su id_generado.
func (r *MovementRepo) GetByProduct(idGenerado string) ([]*entity.MovementWithProduct, error) {
	query := `SELECT ` + movementColumns + movementFrom + `
		WHERE mk.producto = $1 ORDER BY mk.fecha DESC`
	return r.list(query, idGenerado)
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.MovementWithProduct, error) {
	query := `SELECT ` + movementColumns + movementFrom + ` WHERE mk.id_movimiento = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// Create persiste un asiento de kardex y asigna el ID generado por la base.
// Una violación de la FK producto -> productos(id_generado) se traduce a
// ErrInvalidInput: el producto referenciado no existe.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movimientos_kardex (
			fecha, producto, cantidad, tipo_movimiento, rack, nivel, stock_resultado, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_movimiento`
	err := r.q.QueryRow(context.Background(), query,
		m.Fecha, m.Producto, m.Cantidad, m.TipoMovimiento,
		m.Rack, m.Nivel, m.StockResultado, m.CreatedAt,
	).Scan(&m.IDMovimiento)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetStats agrega totales de entradas, salidas y el desglose por tipo de
// producto × tipo de movimiento; desde/hasta nil = sin filtro de fechas.
func (r *MovementRepo) GetStats(desde, hasta *time.Time) (*entity.MovementStats, error) {
	stats := &entity.MovementStats{}

	entradas, err := r.statsTotals(entity.MovementTypeEntrada, desde, hasta)
	if err != nil {
		return nil, err
	}
	stats.Entradas = *entradas

	salidas, err := r.statsTotals(entity.MovementTypeSalida, desde, hasta)
	if err != nil {
		return nil, err
	}
	stats.Salidas = *salidas

	query := `
		SELECT p.tipo, mk.tipo_movimiento, COUNT(*), COALESCE(SUM(mk.cantidad), 0)` +
		movementFrom
	args := []any{}
	if desde != nil && hasta != nil {
		query += ` WHERE mk.fecha BETWEEN $1 AND $2`
		args = append(args, *desde, *hasta)
	}
	query += `
		GROUP BY p.tipo, mk.tipo_movimiento
		ORDER BY p.tipo, mk.tipo_movimiento`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats por tipo: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var g entity.StatsGroup
		if err := rows.Scan(&g.ProductoTipo, &g.TipoMovimiento, &g.Total, &g.CantidadTotal); err != nil {
			return nil, fmt.Errorf("scan stats por tipo: %w", err)
		}
		stats.PorTipo = append(stats.PorTipo, g)
	}
	return stats, rows.Err()
}

func (r *MovementRepo) statsTotals(tipoMovimiento string, desde, hasta *time.Time) (*entity.StatsTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientos_kardex WHERE tipo_movimiento = $1`
	args := []any{tipoMovimiento}
	if desde != nil && hasta != nil {
		query += ` AND fecha BETWEEN $2 AND $3`
		args = append(args, *desde, *hasta)
	}
	var t entity.StatsTotals
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&t.Total, &t.CantidadTotal); err != nil {
		return nil, fmt.Errorf("stats %s: %w", tipoMovimiento, err)
	}
	return &t, nil
}

// Delete elimina un asiento por ID. No modifica el stock del producto.
func (r *MovementRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM movimientos_kardex WHERE id_movimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.MovementWithProduct, error) {
	var m entity.MovementWithProduct
	err := row.Scan(
		&m.IDMovimiento, &m.Fecha, &m.Producto, &m.Cantidad,
		&m.TipoMovimiento, &m.Rack, &m.Nivel, &m.StockResultado, &m.CreatedAt,
		&m.ProductoTipo, &m.Familia, &m.Clase, &m.Modelo, &m.Marca,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.MovementWithProduct, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
