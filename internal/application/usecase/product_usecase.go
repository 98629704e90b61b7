package usecase

import (
	"errors"
	"strconv"
	"time"

	"github.com/suanlabs/inventario-api/internal/application/dto"
	"github.com/suanlabs/inventario-api/internal/domain"
	"github.com/suanlabs/inventario-api/internal/domain/catalog"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
	"github.com/suanlabs/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo se ajusta
// aquí vía Update explícito; el camino normal es el ajuste transaccional
// del paquete kardex.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create genera id_generado y codigo_numerico e inserta el producto.
//
// El código numérico se asigna con una sonda lineal desde 1000: el primer
// candidato libre. El escaneo no es transaccional, así que una creación
// concurrente puede ganarnos el candidato; la constraint UNIQUE rechaza el
// insert y reintentamos con el siguiente candidato hasta agotar el rango.
//
// El id_generado NO es único por construcción: si las iniciales colisionan
// con un producto existente la constraint rechaza el insert y se devuelve
// domain.ErrDuplicate (política: rechazar, sin desambiguación).
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	p := &entity.Product{
		Tipo:         in.Tipo,
		Familia:      in.Familia,
		Clase:        in.Clase,
		Modelo:       in.Modelo,
		Marca:        in.Marca,
		Presentacion: in.Presentacion,
		Color:        in.Color,
		Capacidad:    in.Capacidad,
		UnidadVenta:  in.UnidadVenta,
		TipoMaterial: in.TipoMaterial,
		Rack:         in.Rack,
		Nivel:        in.Nivel,
		Imagen:       in.Imagen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.StockActual != nil {
		p.StockActual = *in.StockActual
	}
	p.IDGenerado = catalog.GenerateProductID(p)

	codigo, err := uc.nextCodigo(catalog.CodigoMin)
	if err != nil {
		return nil, err
	}
	for {
		p.CodigoNumerico = strconv.Itoa(codigo)
		err := uc.repo.Create(p)
		if err == nil {
			return toProductResponse(p), nil
		}
		if !errors.Is(err, domain.ErrCodeTaken) {
			return nil, err
		}
		// Otro alta concurrente ganó este código: seguir la sonda.
		if codigo, err = uc.nextCodigo(codigo + 1); err != nil {
			return nil, err
		}
	}
}

// nextCodigo devuelve el primer código numérico libre desde el candidato dado,
// o domain.ErrCodesExhausted si el rango [1000, 9999] está agotado.
func (uc *ProductUseCase) nextCodigo(desde int) (int, error) {
	for c := desde; c <= catalog.CodigoMax; c++ {
		existe, err := uc.repo.CodeExists(strconv.Itoa(c))
		if err != nil {
			return 0, err
		}
		if !existe {
			return c, nil
		}
	}
	return 0, domain.ErrCodesExhausted
}

// GetAll lista productos, opcionalmente filtrados por tipo.
func (uc *ProductUseCase) GetAll(tipo string) ([]*dto.ProductResponse, error) {
	productos, err := uc.repo.GetAll(tipo)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByCode obtiene un producto por código numérico; nil si no existe.
func (uc *ProductUseCase) GetByCode(codigo string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByCode(codigo)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update reemplaza los campos descriptivos, la ubicación y el stock de un
// producto existente. No modifica id_generado ni codigo_numerico. Devuelve
// nil, nil si el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	p.Tipo = in.Tipo
	p.Familia = in.Familia
	p.Clase = in.Clase
	p.Modelo = in.Modelo
	p.Marca = in.Marca
	p.Presentacion = in.Presentacion
	p.Color = in.Color
	p.Capacidad = in.Capacidad
	p.UnidadVenta = in.UnidadVenta
	p.TipoMaterial = in.TipoMaterial
	p.Rack = in.Rack
	p.Nivel = in.Nivel
	p.Imagen = in.Imagen
	if in.StockActual != nil {
		p.StockActual = *in.StockActual
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina el producto; la base de datos borra en cascada sus movimientos.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		IDGenerado:     p.IDGenerado,
		Tipo:           p.Tipo,
		Familia:        p.Familia,
		Clase:          p.Clase,
		Modelo:         p.Modelo,
		Marca:          p.Marca,
		Presentacion:   p.Presentacion,
		Color:          p.Color,
		Capacidad:      p.Capacidad,
		UnidadVenta:    p.UnidadVenta,
		TipoMaterial:   p.TipoMaterial,
		Rack:           p.Rack,
		Nivel:          p.Nivel,
		CodigoNumerico: p.CodigoNumerico,
		Imagen:         p.Imagen,
		StockActual:    p.StockActual,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
