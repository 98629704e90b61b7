package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/suanlabs/inventario-api/internal/domain"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, id_generado, tipo, familia, clase, modelo, marca,
	presentacion, color, capacidad, unidad_venta, tipo_material,
	rack, nivel, codigo_numerico, imagen, stock_actual, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetAll lista productos por created_at descendente; tipo vacío lista todos.
func (r *ProductRepo) GetAll(tipo string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos`
	var args []any
	if tipo != "" {
		query += ` WHERE tipo = $1`
		args = append(args, tipo)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM productos WHERE id = $1`, id)
	return oneProduct(row, "get producto")
}

// GetByCode obtiene un producto por código numérico; nil si no existe.
func (r *ProductRepo) GetByCode(codigo string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM productos WHERE codigo_numerico = $1`, codigo)
	return oneProduct(row, "get producto por codigo")
}

// GetByCodeForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE)
// hasta el fin de la transacción en curso.
func (r *ProductRepo) GetByCodeForUpdate(codigo string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM productos WHERE codigo_numerico = $1 FOR UPDATE`, codigo)
	return oneProduct(row, "get producto for update")
}

// CodeExists indica si un código numérico ya está asignado.
func (r *ProductRepo) CodeExists(codigo string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM productos WHERE codigo_numerico = $1)`, codigo).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("check codigo numerico: %w", err)
	}
	return existe, nil
}

// Create persiste un nuevo producto y asigna el ID generado por la base.
// Las violaciones de unicidad se traducen a errores de dominio: la del código
// numérico a ErrCodeTaken (el caller reintenta con otro candidato) y la del
// id_generado a ErrDuplicate (colisión de iniciales, se rechaza).
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO productos (
			id_generado, tipo, familia, clase, modelo, marca,
			presentacion, color, capacidad, unidad_venta, tipo_material,
			rack, nivel, codigo_numerico, imagen, stock_actual, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.IDGenerado, p.Tipo, p.Familia, p.Clase, p.Modelo, p.Marca,
		p.Presentacion, p.Color, p.Capacidad, p.UnidadVenta, p.TipoMaterial,
		p.Rack, p.Nivel, p.CodigoNumerico, p.Imagen, p.StockActual, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			if uniqueConstraint(err) == "productos_codigo_numerico_key" {
				return domain.ErrCodeTaken
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables y el stock de un producto existente.
// No toca id_generado ni codigo_numerico.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE productos SET
			tipo = $2, familia = $3, clase = $4, modelo = $5, marca = $6,
			presentacion = $7, color = $8, capacidad = $9, unidad_venta = $10,
			tipo_material = $11, rack = $12, nivel = $13, imagen = $14,
			stock_actual = $15, updated_at = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Tipo, p.Familia, p.Clase, p.Modelo, p.Marca,
		p.Presentacion, p.Color, p.Capacidad, p.UnidadVenta,
		p.TipoMaterial, p.Rack, p.Nivel, p.Imagen,
		p.StockActual, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija stock_actual del producto por código numérico (usado por
// el ajuste transaccional, con la fila ya bloqueada).
func (r *ProductRepo) UpdateStock(codigo string, stock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2, updated_at = now() WHERE codigo_numerico = $1`,
		codigo, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID; la FK borra en cascada sus movimientos.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.IDGenerado, &p.Tipo, &p.Familia, &p.Clase, &p.Modelo, &p.Marca,
		&p.Presentacion, &p.Color, &p.Capacidad, &p.UnidadVenta, &p.TipoMaterial,
		&p.Rack, &p.Nivel, &p.CodigoNumerico, &p.Imagen, &p.StockActual,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func oneProduct(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
