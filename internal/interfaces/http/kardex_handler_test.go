package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suanlabs/inventario-api/internal/application/dto"
)

func TestCrearMovimiento_AltaAdministrativa(t *testing.T) {
	app, store := newTestApp(t, nil)
	p := seedProduct(t, store, "1000", 5)

	body := `{
		"producto": "` + p.IDGenerado + `",
		"cantidad": 5,
		"tipo_movimiento": "ENTRADA",
		"rack": "A1",
		"nivel": "2",
		"stock_resultado": 5
	}`
	status, env := doJSON(t, app, http.MethodPost, "/api/kardex", body)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Movimiento creado correctamente", env.Message)

	var out dto.MovementResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, int64(1), out.IDMovimiento)
	assert.Equal(t, p.IDGenerado, out.Producto)
	assert.False(t, out.Fecha.IsZero(), "fecha por defecto")

	// El alta administrativa no toca el stock del producto.
	status, env = doJSON(t, app, http.MethodGet, "/api/productos/codigo/1000", "")
	require.Equal(t, http.StatusOK, status)
	var prod dto.ProductResponse
	require.NoError(t, json.Unmarshal(env.Data, &prod))
	assert.Equal(t, 5, prod.StockActual)
}

func TestCrearMovimiento_Validacion(t *testing.T) {
	app, _ := newTestApp(t, nil)

	status, env := doJSON(t, app, http.MethodPost, "/api/kardex", `{"cantidad":0,"tipo_movimiento":"X"}`)
	require.Equal(t, http.StatusBadRequest, status)

	var errs []string
	require.NoError(t, json.Unmarshal(env.Data, &errs))
	assert.Contains(t, errs, "producto es requerido")
	assert.Contains(t, errs, "cantidad debe ser un número entero positivo")
	assert.Contains(t, errs, "tipo_movimiento debe ser ENTRADA o SALIDA")
}

func TestCrearMovimiento_ProductoInexistente(t *testing.T) {
	app, _ := newTestApp(t, nil)

	body := `{
		"producto": "NOEXISTE1",
		"cantidad": 1,
		"tipo_movimiento": "ENTRADA",
		"rack": "A1",
		"nivel": "2",
		"stock_resultado": 1
	}`
	status, env := doJSON(t, app, http.MethodPost, "/api/kardex", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestListarMovimientos_ConDatosDeProducto(t *testing.T) {
	app, store := newTestApp(t, nil)
	seedProduct(t, store, "1000", 0)

	status, _ := doJSON(t, app, http.MethodPut, "/api/productos/stock/1000", `{"cantidad":10,"tipo_movimiento":"ENTRADA"}`)
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodGet, "/api/kardex", "")
	require.Equal(t, http.StatusOK, status)

	var movs []dto.MovementResponse
	require.NoError(t, json.Unmarshal(env.Data, &movs))
	require.Len(t, movs, 1)
	assert.Equal(t, "MateriaPrima", movs[0].ProductoTipo, "el listado trae los datos del JOIN")
	assert.Equal(t, "Metal", movs[0].Familia)
	assert.Equal(t, 10, movs[0].StockResultado)

	// Filtro por tipo de producto.
	status, env = doJSON(t, app, http.MethodGet, "/api/kardex?tipo=ProductoTerminado", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0 movimientos obtenidos correctamente", env.Message)

	status, _ = doJSON(t, app, http.MethodGet, "/api/kardex?tipo=Invalido", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMovimientosDeUnProducto(t *testing.T) {
	app, store := newTestApp(t, nil)
	p := seedProduct(t, store, "1000", 0)
	seedProduct(t, store, "1001", 0)

	for _, codigo := range []string{"1000", "1000", "1001"} {
		status, _ := doJSON(t, app, http.MethodPut, "/api/productos/stock/"+codigo, `{"cantidad":1,"tipo_movimiento":"ENTRADA"}`)
		require.Equal(t, http.StatusOK, status)
	}

	status, env := doJSON(t, app, http.MethodGet, "/api/kardex/producto/"+p.IDGenerado, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2 movimientos del producto obtenidos correctamente", env.Message)
}

func TestObtenerMovimiento_PorID(t *testing.T) {
	app, store := newTestApp(t, nil)
	seedProduct(t, store, "1000", 0)

	status, _ := doJSON(t, app, http.MethodPut, "/api/productos/stock/1000", `{"cantidad":3,"tipo_movimiento":"ENTRADA"}`)
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodGet, "/api/kardex/1", "")
	require.Equal(t, http.StatusOK, status)
	var out dto.MovementResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 3, out.Cantidad)

	status, _ = doJSON(t, app, http.MethodGet, "/api/kardex/99", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doJSON(t, app, http.MethodGet, "/api/kardex/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "id debe ser un entero", env.Error)
}

func TestEstadisticas(t *testing.T) {
	app, store := newTestApp(t, nil)
	seedProduct(t, store, "1000", 0)

	for _, body := range []string{
		`{"cantidad":100,"tipo_movimiento":"ENTRADA"}`,
		`{"cantidad":20,"tipo_movimiento":"ENTRADA"}`,
		`{"cantidad":30,"tipo_movimiento":"SALIDA"}`,
	} {
		status, _ := doJSON(t, app, http.MethodPut, "/api/productos/stock/1000", body)
		require.Equal(t, http.StatusOK, status)
	}

	status, env := doJSON(t, app, http.MethodGet, "/api/kardex/stats", "")
	require.Equal(t, http.StatusOK, status)

	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.Entradas.Total)
	assert.Equal(t, int64(120), stats.Entradas.CantidadTotal)
	assert.Equal(t, int64(1), stats.Salidas.Total)
	assert.Equal(t, int64(30), stats.Salidas.CantidadTotal)
}

func TestEstadisticas_RangoDeFechas(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// Rango válido (aunque vacío).
	status, _ := doJSON(t, app, http.MethodGet, "/api/kardex/stats?fecha_inicio=2024-01-01&fecha_fin=2024-12-31", "")
	assert.Equal(t, http.StatusOK, status)

	// Una sola fecha no es un rango.
	status, env := doJSON(t, app, http.MethodGet, "/api/kardex/stats?fecha_inicio=2024-01-01", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "fecha_inicio y fecha_fin deben enviarse juntas", env.Error)

	status, _ = doJSON(t, app, http.MethodGet, "/api/kardex/stats?fecha_inicio=hoy&fecha_fin=2024-12-31", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEliminarMovimiento(t *testing.T) {
	app, store := newTestApp(t, nil)
	seedProduct(t, store, "1000", 0)

	status, _ := doJSON(t, app, http.MethodPut, "/api/productos/stock/1000", `{"cantidad":10,"tipo_movimiento":"ENTRADA"}`)
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodDelete, "/api/kardex/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Movimiento eliminado correctamente", env.Message)

	// Borrar el asiento no revierte el stock del producto.
	var prod dto.ProductResponse
	status, env = doJSON(t, app, http.MethodGet, "/api/productos/codigo/1000", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &prod))
	assert.Equal(t, 10, prod.StockActual)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/kardex/99", "")
	assert.Equal(t, http.StatusNotFound, status)
}
