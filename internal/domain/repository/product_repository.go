package repository

import "github.com/suanlabs/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get devuelven nil, nil cuando no existe la fila (la ausencia
// no es un error); Update, UpdateStock y Delete devuelven domain.ErrNotFound
// si ninguna fila coincide.
type ProductRepository interface {
	// GetAll lista productos ordenados por created_at descendente;
	// tipo vacío lista todos, si no filtra por tipo de producto.
	GetAll(tipo string) ([]*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	GetByCode(codigo string) (*entity.Product, error)
	// GetByCodeForUpdate obtiene el producto bloqueando su fila
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetByCodeForUpdate(codigo string) (*entity.Product, error)
	// CodeExists indica si un código numérico ya está asignado.
	CodeExists(codigo string) (bool, error)
	// Create inserta el producto y asigna ID y timestamps en la entidad.
	// Devuelve domain.ErrCodeTaken si chocó la constraint del código numérico
	// y domain.ErrDuplicate si chocó la del id_generado.
	Create(p *entity.Product) error
	// Update reemplaza los campos mutables y el stock; nunca toca
	// id_generado ni codigo_numerico.
	Update(p *entity.Product) error
	// UpdateStock fija stock_actual del producto identificado por código numérico.
	UpdateStock(codigo string, stock int) error
	Delete(id int64) error
}
