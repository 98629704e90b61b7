package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/suanlabs/inventario-api/internal/domain/catalog"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

func productoPlancha() *entity.Product {
	return &entity.Product{
		Tipo:         entity.ProductTypeMateriaPrima,
		Familia:      "Metal",
		Clase:        "Aluminio",
		Modelo:       "Plancha",
		Marca:        "Molina",
		Presentacion: "Industrial",
		Color:        "Natural",
		Capacidad:    "1mm",
		UnidadVenta:  "Metro",
	}
}

func TestGenerateProductID_IniciaMayusculasMasSecuencial(t *testing.T) {
	// MateriaPrima, Metal, Aluminio, Plancha, Molina, Industrial, Natural, 1mm, Metro
	// -> M M A P M I N 1 M + "1"
	assert.Equal(t, "MMAPMIN1M1", catalog.GenerateProductID(productoPlancha()))
}

func TestGenerateProductID_Deterministico(t *testing.T) {
	a := catalog.GenerateProductID(productoPlancha())
	b := catalog.GenerateProductID(productoPlancha())
	assert.Equal(t, a, b)
}

func TestGenerateProductID_NormalizaMinusculas(t *testing.T) {
	p := productoPlancha()
	p.Familia = "metal"
	p.Clase = "aluminio"
	assert.Equal(t, "MMAPMIN1M1", catalog.GenerateProductID(p))
}

func TestGenerateProductID_CampoVacioNoAportaInicial(t *testing.T) {
	p := productoPlancha()
	p.Color = ""
	assert.Equal(t, "MMAPMI1M1", catalog.GenerateProductID(p))
}

func TestGenerateProductID_ProductoTerminado(t *testing.T) {
	p := &entity.Product{
		Tipo:         entity.ProductTypeTerminado,
		Familia:      "Electronica",
		Clase:        "Audio",
		Modelo:       "MP3",
		Marca:        "Nano",
		Presentacion: "Apple",
		Color:        "Plata",
		Capacidad:    "16GB",
		UnidadVenta:  "Unidad",
	}
	assert.Equal(t, "PEAMNAP1U1", catalog.GenerateProductID(p))
}

func TestRangoCodigos(t *testing.T) {
	assert.Equal(t, 1000, catalog.CodigoMin)
	assert.Equal(t, 9999, catalog.CodigoMax)
	// 9000 códigos asignables en total
	assert.Equal(t, 9000, catalog.CodigoMax-catalog.CodigoMin+1)
}
