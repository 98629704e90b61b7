package kardex_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suanlabs/inventario-api/internal/application/kardex"
	"github.com/suanlabs/inventario-api/internal/domain"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

// fakeProductStore implementación mínima en memoria del puerto ProductRepository.
type fakeProductStore struct {
	items map[string]*entity.Product // por código numérico
}

func (f *fakeProductStore) GetAll(string) ([]*entity.Product, error)   { return nil, nil }
func (f *fakeProductStore) GetByID(int64) (*entity.Product, error)     { return nil, nil }
func (f *fakeProductStore) CodeExists(string) (bool, error)            { return false, nil }
func (f *fakeProductStore) Create(*entity.Product) error               { return nil }
func (f *fakeProductStore) Update(*entity.Product) error               { return nil }
func (f *fakeProductStore) Delete(int64) error                         { return nil }

func (f *fakeProductStore) GetByCode(codigo string) (*entity.Product, error) {
	return f.items[codigo], nil
}

func (f *fakeProductStore) GetByCodeForUpdate(codigo string) (*entity.Product, error) {
	return f.items[codigo], nil
}

func (f *fakeProductStore) UpdateStock(codigo string, stock int) error {
	p, ok := f.items[codigo]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}

// fakeMovementStore registra los asientos creados.
type fakeMovementStore struct {
	created []*entity.Movement
}

func (f *fakeMovementStore) GetAll(string) ([]*entity.MovementWithProduct, error) { return nil, nil }
func (f *fakeMovementStore) GetByProduct(string) ([]*entity.MovementWithProduct, error) {
	return nil, nil
}
func (f *fakeMovementStore) GetByID(int64) (*entity.MovementWithProduct, error) { return nil, nil }
func (f *fakeMovementStore) GetStats(*time.Time, *time.Time) (*entity.MovementStats, error) {
	return &entity.MovementStats{}, nil
}
func (f *fakeMovementStore) Delete(int64) error { return nil }

func (f *fakeMovementStore) Create(m *entity.Movement) error {
	m.IDMovimiento = int64(len(f.created) + 1)
	f.created = append(f.created, m)
	return nil
}

// fakeTxRunner ejecuta fn con los fakes y simula la semántica transaccional:
// si fn falla, restaura los stocks y descarta los asientos creados dentro de fn.
type fakeTxRunner struct {
	products *fakeProductStore
	movs     *fakeMovementStore
	runs     int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	f.runs++
	stocks := make(map[string]int, len(f.products.items))
	for codigo, p := range f.products.items {
		stocks[codigo] = p.StockActual
	}
	movsAntes := len(f.movs.created)

	if err := fn(f.products, f.movs); err != nil {
		for codigo, s := range stocks {
			f.products.items[codigo].StockActual = s
		}
		f.movs.created = f.movs.created[:movsAntes]
		return err
	}
	return nil
}

func newAdjustFixture(stock int) (*kardex.AdjustStockUseCase, *fakeProductStore, *fakeMovementStore, *fakeTxRunner) {
	products := &fakeProductStore{items: map[string]*entity.Product{
		"2000": {
			ID:             1,
			IDGenerado:     "MMAPMIN1M1",
			Tipo:           entity.ProductTypeMateriaPrima,
			Rack:           "A1",
			Nivel:          "2",
			CodigoNumerico: "2000",
			StockActual:    stock,
		},
	}}
	movs := &fakeMovementStore{}
	runner := &fakeTxRunner{products: products, movs: movs}
	return kardex.NewAdjustStockUseCase(runner), products, movs, runner
}

func TestAdjust_EntradaSumaStock(t *testing.T) {
	uc, products, movs, _ := newAdjustFixture(0)

	out, err := uc.Adjust(context.Background(), "2000", 100, entity.MovementTypeEntrada)
	require.NoError(t, err)

	assert.Equal(t, "MMAPMIN1M1", out.Producto)
	assert.Equal(t, 0, out.StockAnterior)
	assert.Equal(t, 100, out.StockNuevo)
	assert.Equal(t, 100, products.items["2000"].StockActual)

	require.Len(t, movs.created, 1)
	mov := movs.created[0]
	assert.Equal(t, "MMAPMIN1M1", mov.Producto)
	assert.Equal(t, entity.MovementTypeEntrada, mov.TipoMovimiento)
	assert.Equal(t, 100, mov.StockResultado)
	assert.Equal(t, "A1", mov.Rack, "el asiento copia la ubicación actual del producto")
	assert.Equal(t, "2", mov.Nivel)
}

func TestAdjust_SalidaRestaStock(t *testing.T) {
	uc, products, movs, _ := newAdjustFixture(50)

	out, err := uc.Adjust(context.Background(), "2000", 20, entity.MovementTypeSalida)
	require.NoError(t, err)

	assert.Equal(t, 50, out.StockAnterior)
	assert.Equal(t, 30, out.StockNuevo)
	assert.Equal(t, 30, products.items["2000"].StockActual)
	require.Len(t, movs.created, 1)
	assert.Equal(t, 30, movs.created[0].StockResultado)
}

func TestAdjust_SalidaConStockInsuficienteNoDejarEstadoParcial(t *testing.T) {
	uc, products, movs, _ := newAdjustFixture(10)

	_, err := uc.Adjust(context.Background(), "2000", 11, entity.MovementTypeSalida)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, products.items["2000"].StockActual, "el stock no cambia")
	assert.Empty(t, movs.created, "no se inserta ningún asiento")
}

func TestAdjust_SalidaExacta(t *testing.T) {
	uc, products, _, _ := newAdjustFixture(10)

	out, err := uc.Adjust(context.Background(), "2000", 10, entity.MovementTypeSalida)
	require.NoError(t, err)
	assert.Equal(t, 0, out.StockNuevo)
	assert.Equal(t, 0, products.items["2000"].StockActual)
}

func TestAdjust_CodigoDesconocidoSinEfectos(t *testing.T) {
	uc, _, movs, _ := newAdjustFixture(10)

	_, err := uc.Adjust(context.Background(), "9999", 1, entity.MovementTypeEntrada)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movs.created)
}

func TestAdjust_RechazaEntradaInvalidaAntesDeAbrirTransaccion(t *testing.T) {
	uc, _, _, runner := newAdjustFixture(10)

	_, err := uc.Adjust(context.Background(), "2000", 0, entity.MovementTypeEntrada)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), "2000", -5, entity.MovementTypeSalida)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), "2000", 1, "TRASLADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, runner.runs, "no se abre transacción para entradas inválidas")
}

func TestAdjust_SecuenciaDeMovimientosConsistente(t *testing.T) {
	uc, products, movs, _ := newAdjustFixture(0)
	ctx := context.Background()

	_, err := uc.Adjust(ctx, "2000", 100, entity.MovementTypeEntrada)
	require.NoError(t, err)
	_, err = uc.Adjust(ctx, "2000", 30, entity.MovementTypeSalida)
	require.NoError(t, err)
	_, err = uc.Adjust(ctx, "2000", 5, entity.MovementTypeEntrada)
	require.NoError(t, err)

	// stock_resultado de cada asiento refleja la aplicación secuencial desde 0.
	require.Len(t, movs.created, 3)
	assert.Equal(t, 100, movs.created[0].StockResultado)
	assert.Equal(t, 70, movs.created[1].StockResultado)
	assert.Equal(t, 75, movs.created[2].StockResultado)
	assert.Equal(t, 75, products.items["2000"].StockActual)
}
