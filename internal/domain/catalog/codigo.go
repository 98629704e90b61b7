// Package catalog contiene la generación de identificadores del catálogo:
// el identificador derivado de iniciales (id_generado) y los límites del
// código numérico de búsqueda (codigo_numerico).
package catalog

import (
	"strings"
	"unicode"

	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

// Rango de códigos numéricos asignables. El espacio es finito: agotarlo
// significa que no se pueden crear más productos.
const (
	CodigoMin = 1000
	CodigoMax = 9999
)

// GenerateProductID deriva el id_generado del producto: la inicial en mayúscula
// de cada campo descriptivo, en orden fijo, más el dígito de secuencia "1".
// Es una función pura: entradas idénticas producen siempre el mismo identificador.
// NO es único por construcción — dos productos con las mismas iniciales colisionan
// y es la constraint UNIQUE de la base la que rechaza el segundo insert.
func GenerateProductID(p *entity.Product) string {
	var b strings.Builder
	for _, campo := range []string{
		p.Tipo, p.Familia, p.Clase, p.Modelo, p.Marca,
		p.Presentacion, p.Color, p.Capacidad, p.UnidadVenta,
	} {
		if inicial, ok := firstUpper(campo); ok {
			b.WriteRune(inicial)
		}
	}
	b.WriteByte('1') // secuencial por defecto
	return b.String()
}

// firstUpper devuelve la primera runa del string en mayúscula.
// Un campo vacío no aporta inicial.
func firstUpper(s string) (rune, bool) {
	for _, r := range s {
		return unicode.ToUpper(r), true
	}
	return 0, false
}
