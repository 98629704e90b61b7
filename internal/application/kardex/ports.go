package kardex

import (
	"context"

	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ajuste de stock:
// si fn devuelve error se hace Rollback, si no Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
