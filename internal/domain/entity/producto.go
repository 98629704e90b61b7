package entity

import "time"

// Tipos de producto del catálogo.
const (
	ProductTypeTerminado    = "ProductoTerminado"
	ProductTypeMateriaPrima = "MateriaPrima"
)

// IsValidProductType indica si tipo es uno de los tipos de producto soportados.
func IsValidProductType(tipo string) bool {
	return tipo == ProductTypeTerminado || tipo == ProductTypeMateriaPrima
}

// Product representa un producto del inventario (terminado o materia prima).
// IDGenerado y CodigoNumerico se asignan en la creación y nunca cambian;
// StockActual solo se muta junto con un movimiento de kardex (o vía update explícito).
type Product struct {
	ID             int64
	IDGenerado     string // identificador derivado de iniciales, único
	Tipo           string
	Familia        string
	Clase          string
	Modelo         string
	Marca          string
	Presentacion   string
	Color          string
	Capacidad      string
	UnidadVenta    string
	TipoMaterial   *string // opcional
	Rack           string
	Nivel          string
	CodigoNumerico string // código corto de búsqueda [1000, 9999], único
	Imagen         *string
	StockActual    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
