package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/suanlabs/inventario-api/internal/application/dto"
	"github.com/suanlabs/inventario-api/internal/application/kardex"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

// KardexHandler maneja las peticiones HTTP del kardex de movimientos.
type KardexHandler struct {
	uc         *kardex.KardexUseCase
	production bool
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *kardex.KardexUseCase, production bool) *KardexHandler {
	return &KardexHandler{uc: uc, production: production}
}

// GetAll godoc
// @Summary      Listar movimientos de kardex
// @Tags         kardex
// @Produce      json
// @Param        tipo  query  string  false  "Filtrar por tipo de producto"
// @Success      200  {object}  dto.Response
// @Router       /api/kardex [get]
func (h *KardexHandler) GetAll(c *fiber.Ctx) error {
	tipo := c.Query("tipo")
	if tipo != "" && !entity.IsValidProductType(tipo) {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "tipo debe ser ProductoTerminado o MateriaPrima")
	}
	movimientos, err := h.uc.GetAll(tipo)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, fmt.Sprintf("%d movimientos obtenidos correctamente", len(movimientos)), movimientos)
}

// GetStats godoc
// @Summary      Estadísticas de movimientos
// @Tags         kardex
// @Produce      json
// @Param        fecha_inicio  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        fecha_fin     query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.Response
// @Router       /api/kardex/stats [get]
func (h *KardexHandler) GetStats(c *fiber.Ctx) error {
	desde, hasta, err := parseDateRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", err.Error())
	}
	stats, err := h.uc.GetStats(desde, hasta)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, "Estadísticas obtenidas correctamente", stats)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         kardex
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/kardex/{id} [get]
func (h *KardexHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "id debe ser un entero")
	}
	movimiento, err := h.uc.GetByID(id)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	if movimiento == nil {
		return fail(c, fiber.StatusNotFound, "Movimiento no encontrado", "")
	}
	return success(c, fiber.StatusOK, "Movimiento obtenido correctamente", movimiento)
}

// GetByProduct godoc
// @Summary      Listar movimientos de un producto
// @Tags         kardex
// @Produce      json
// @Param        id_generado  path  string  true  "id_generado del producto"
// @Success      200  {object}  dto.Response
// @Router       /api/kardex/producto/{id_generado} [get]
func (h *KardexHandler) GetByProduct(c *fiber.Ctx) error {
	movimientos, err := h.uc.GetByProduct(c.Params("id_generado"))
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, fmt.Sprintf("%d movimientos del producto obtenidos correctamente", len(movimientos)), movimientos)
}

// Create godoc
// @Summary      Crear movimiento (alta administrativa, sin recálculo de stock)
// @Tags         kardex
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /api/kardex [post]
func (h *KardexHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido", err.Error())
	}
	if errs := in.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}
	movimiento, err := h.uc.Create(in)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusCreated, "Movimiento creado correctamente", movimiento)
}

// Delete godoc
// @Summary      Eliminar movimiento (no modifica el stock del producto)
// @Tags         kardex
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/kardex/{id} [delete]
func (h *KardexHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "id debe ser un entero")
	}
	if err := h.uc.Delete(id); err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, "Movimiento eliminado correctamente", nil)
}

// parseDateRange interpreta fecha_inicio/fecha_fin. Deben venir ambas o ninguna;
// se aceptan fechas YYYY-MM-DD o timestamps RFC 3339.
func parseDateRange(inicio, fin string) (*time.Time, *time.Time, error) {
	if inicio == "" && fin == "" {
		return nil, nil, nil
	}
	if inicio == "" || fin == "" {
		return nil, nil, fmt.Errorf("fecha_inicio y fecha_fin deben enviarse juntas")
	}
	desde, err := parseDate(inicio)
	if err != nil {
		return nil, nil, fmt.Errorf("fecha_inicio inválida: %s", inicio)
	}
	hasta, err := parseDate(fin)
	if err != nil {
		return nil, nil, fmt.Errorf("fecha_fin inválida: %s", fin)
	}
	return &desde, &hasta, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
