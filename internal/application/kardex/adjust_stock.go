package kardex

import (
	"context"
	"time"

	"github.com/suanlabs/inventario-api/internal/application/dto"
	"github.com/suanlabs/inventario-api/internal/domain"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

// AdjustStockUseCase aplica un ajuste de stock de forma transaccional:
// lee el producto con bloqueo de fila (SELECT FOR UPDATE), calcula el
// stock resultante, actualiza productos.stock_actual y agrega el asiento
// de kardex, todo con Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// Adjust ejecuta el ajuste sobre el producto identificado por código numérico.
//
// Reglas:
//   - cantidad debe ser un entero positivo y tipoMovimiento ENTRADA o SALIDA;
//     se rechaza antes de abrir la transacción.
//   - ENTRADA suma, SALIDA resta; una SALIDA que dejaría el stock negativo
//     aborta toda la transacción con domain.ErrInsufficientStock: no se
//     persiste ningún estado parcial.
//   - El asiento copia rack y nivel de la ubicación actual del producto y
//     registra stock_resultado = stock después del ajuste.
//
// El bloqueo de fila evita que dos ajustes concurrentes sobre el mismo
// producto lean el mismo stock anterior.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, codigo string, cantidad int, tipoMovimiento string) (*dto.AdjustStockResult, error) {
	if cantidad < 1 || !entity.IsValidMovementType(tipoMovimiento) {
		return nil, domain.ErrInvalidInput
	}

	var result *dto.AdjustStockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		p, err := productRepo.GetByCodeForUpdate(codigo)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		stockAnterior := p.StockActual
		var stockNuevo int
		if tipoMovimiento == entity.MovementTypeEntrada {
			stockNuevo = stockAnterior + cantidad
		} else {
			stockNuevo = stockAnterior - cantidad
			if stockNuevo < 0 {
				return domain.ErrInsufficientStock
			}
		}

		if err := productRepo.UpdateStock(codigo, stockNuevo); err != nil {
			return err
		}

		now := time.Now()
		mov := &entity.Movement{
			Fecha:          now,
			Producto:       p.IDGenerado,
			Cantidad:       cantidad,
			TipoMovimiento: tipoMovimiento,
			Rack:           p.Rack,
			Nivel:          p.Nivel,
			StockResultado: stockNuevo,
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = &dto.AdjustStockResult{
			Producto:       p.IDGenerado,
			StockAnterior:  stockAnterior,
			StockNuevo:     stockNuevo,
			Cantidad:       cantidad,
			TipoMovimiento: tipoMovimiento,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
