package kardex

import (
	"time"

	"github.com/suanlabs/inventario-api/internal/application/dto"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

// KardexUseCase consultas y operaciones administrativas sobre el kardex.
// El camino normal para mover stock es AdjustStockUseCase; Create y Delete
// existen para relleno histórico y corrección manual, y por diseño no
// recalculan el stock del producto ni los stock_resultado posteriores.
type KardexUseCase struct {
	repo repository.MovementRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(repo repository.MovementRepository) *KardexUseCase {
	return &KardexUseCase{repo: repo}
}

// GetAll lista movimientos, opcionalmente filtrados por tipo de producto.
func (uc *KardexUseCase) GetAll(productoTipo string) ([]*dto.MovementResponse, error) {
	movs, err := uc.repo.GetAll(productoTipo)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movs), nil
}

// GetByProduct lista los movimientos de un producto por su id_generado.
func (uc *KardexUseCase) GetByProduct(idGenerado string) ([]*dto.MovementResponse, error) {
	movs, err := uc.repo.GetByProduct(idGenerado)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movs), nil
}

// GetByID obtiene un movimiento; nil si no existe.
func (uc *KardexUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// Create inserta un asiento tal cual lo aporta el caller (alta administrativa).
// La fecha por defecto es ahora. El stock_resultado viene del caller: este
// camino no lo valida contra el stock actual del producto.
func (uc *KardexUseCase) Create(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	mov := &entity.Movement{
		Fecha:          fecha,
		Producto:       in.Producto,
		Cantidad:       in.Cantidad,
		TipoMovimiento: in.TipoMovimiento,
		Rack:           in.Rack,
		Nivel:          in.Nivel,
		StockResultado: in.StockResultado,
		CreatedAt:      now,
	}
	if err := uc.repo.Create(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(&entity.MovementWithProduct{Movement: *mov}), nil
}

// GetStats agrega entradas, salidas y el desglose por tipo de producto,
// opcionalmente restringido a un rango de fechas.
func (uc *KardexUseCase) GetStats(desde, hasta *time.Time) (*dto.StatsResponse, error) {
	stats, err := uc.repo.GetStats(desde, hasta)
	if err != nil {
		return nil, err
	}
	out := &dto.StatsResponse{
		Entradas: dto.StatsTotalsResponse{Total: stats.Entradas.Total, CantidadTotal: stats.Entradas.CantidadTotal},
		Salidas:  dto.StatsTotalsResponse{Total: stats.Salidas.Total, CantidadTotal: stats.Salidas.CantidadTotal},
		PorTipo:  make([]dto.StatsGroupResponse, 0, len(stats.PorTipo)),
	}
	for _, g := range stats.PorTipo {
		out.PorTipo = append(out.PorTipo, dto.StatsGroupResponse{
			Tipo:           g.ProductoTipo,
			TipoMovimiento: g.TipoMovimiento,
			Total:          g.Total,
			CantidadTotal:  g.CantidadTotal,
		})
	}
	return out, nil
}

// Delete elimina un asiento. No toca productos.stock_actual ni recalcula
// stock_resultado de asientos posteriores (válvula de escape administrativa).
func (uc *KardexUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toMovementResponse(m *entity.MovementWithProduct) *dto.MovementResponse {
	return &dto.MovementResponse{
		IDMovimiento:   m.IDMovimiento,
		Fecha:          m.Fecha,
		Producto:       m.Producto,
		Cantidad:       m.Cantidad,
		TipoMovimiento: m.TipoMovimiento,
		Rack:           m.Rack,
		Nivel:          m.Nivel,
		StockResultado: m.StockResultado,
		CreatedAt:      m.CreatedAt,
		ProductoTipo:   m.ProductoTipo,
		Familia:        m.Familia,
		Clase:          m.Clase,
		Modelo:         m.Modelo,
		Marca:          m.Marca,
	}
}

func toMovementResponses(movs []*entity.MovementWithProduct) []*dto.MovementResponse {
	out := make([]*dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return out
}
