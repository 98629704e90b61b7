package dto

import (
	"fmt"
	"time"

	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar un producto (PUT semántica completa:
// todos los campos descriptivos son requeridos, como en el alta).
// id_generado y codigo_numerico nunca vienen del cliente: se generan en el alta
// y son inmutables después.
type ProductRequest struct {
	Tipo         string  `json:"tipo"`
	Familia      string  `json:"familia"`
	Clase        string  `json:"clase"`
	Modelo       string  `json:"modelo"`
	Marca        string  `json:"marca"`
	Presentacion string  `json:"presentacion"`
	Color        string  `json:"color"`
	Capacidad    string  `json:"capacidad"`
	UnidadVenta  string  `json:"unidad_venta"`
	TipoMaterial *string `json:"tipo_material"`
	Rack         string  `json:"rack"`
	Nivel        string  `json:"nivel"`
	Imagen       *string `json:"imagen"`
	StockActual  *int    `json:"stock_actual"`
}

// Validate aplica las reglas de campos del producto y devuelve la lista de
// errores encontrados (vacía si el request es válido).
func (r *ProductRequest) Validate() []string {
	var errs []string
	if !entity.IsValidProductType(r.Tipo) {
		errs = append(errs, "tipo debe ser ProductoTerminado o MateriaPrima")
	}
	errs = appendRequired(errs, "familia", r.Familia, 100)
	errs = appendRequired(errs, "clase", r.Clase, 100)
	errs = appendRequired(errs, "modelo", r.Modelo, 100)
	errs = appendRequired(errs, "marca", r.Marca, 100)
	errs = appendRequired(errs, "presentacion", r.Presentacion, 100)
	errs = appendRequired(errs, "color", r.Color, 50)
	errs = appendRequired(errs, "capacidad", r.Capacidad, 50)
	errs = appendRequired(errs, "unidad_venta", r.UnidadVenta, 50)
	errs = appendRequired(errs, "rack", r.Rack, 20)
	errs = appendRequired(errs, "nivel", r.Nivel, 20)
	if r.TipoMaterial != nil && len(*r.TipoMaterial) > 100 {
		errs = append(errs, "tipo_material debe tener máximo 100 caracteres")
	}
	if r.Imagen != nil && len(*r.Imagen) > 500 {
		errs = append(errs, "imagen debe tener máximo 500 caracteres")
	}
	if r.StockActual != nil && *r.StockActual < 0 {
		errs = append(errs, "stock_actual debe ser un entero no negativo")
	}
	return errs
}

func appendRequired(errs []string, campo, valor string, max int) []string {
	if valor == "" {
		return append(errs, campo+" es requerido")
	}
	if len(valor) > max {
		return append(errs, fmt.Sprintf("%s debe tener máximo %d caracteres", campo, max))
	}
	return errs
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64     `json:"id"`
	IDGenerado     string    `json:"id_generado"`
	Tipo           string    `json:"tipo"`
	Familia        string    `json:"familia"`
	Clase          string    `json:"clase"`
	Modelo         string    `json:"modelo"`
	Marca          string    `json:"marca"`
	Presentacion   string    `json:"presentacion"`
	Color          string    `json:"color"`
	Capacidad      string    `json:"capacidad"`
	UnidadVenta    string    `json:"unidad_venta"`
	TipoMaterial   *string   `json:"tipo_material"`
	Rack           string    `json:"rack"`
	Nivel          string    `json:"nivel"`
	CodigoNumerico string    `json:"codigo_numerico"`
	Imagen         *string   `json:"imagen"`
	StockActual    int       `json:"stock_actual"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AdjustStockRequest entrada del ajuste de stock (PUT /api/productos/stock/:codigo).
type AdjustStockRequest struct {
	Cantidad       int    `json:"cantidad"`
	TipoMovimiento string `json:"tipo_movimiento"`
}

// Validate aplica las reglas del ajuste: cantidad entera positiva y tipo ENTRADA/SALIDA.
func (r *AdjustStockRequest) Validate() []string {
	var errs []string
	if r.Cantidad < 1 {
		errs = append(errs, "cantidad debe ser un número entero positivo")
	}
	if !entity.IsValidMovementType(r.TipoMovimiento) {
		errs = append(errs, "tipo_movimiento debe ser ENTRADA o SALIDA")
	}
	return errs
}

// AdjustStockResult resultado del ajuste de stock: la foto antes/después.
type AdjustStockResult struct {
	Producto       string `json:"producto"`
	StockAnterior  int    `json:"stock_anterior"`
	StockNuevo     int    `json:"stock_nuevo"`
	Cantidad       int    `json:"cantidad"`
	TipoMovimiento string `json:"tipo_movimiento"`
}
