package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/suanlabs/inventario-api/internal/application/dto"
	"github.com/suanlabs/inventario-api/internal/application/kardex"
	"github.com/suanlabs/inventario-api/internal/application/usecase"
	"github.com/suanlabs/inventario-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP de productos, incluido el ajuste de stock.
type ProductHandler struct {
	uc         *usecase.ProductUseCase
	adjust     *kardex.AdjustStockUseCase
	production bool
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, adjust *kardex.AdjustStockUseCase, production bool) *ProductHandler {
	return &ProductHandler{uc: uc, adjust: adjust, production: production}
}

// GetAll godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        tipo  query  string  false  "ProductoTerminado o MateriaPrima"
// @Success      200  {object}  dto.Response
// @Router       /api/productos [get]
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	tipo := c.Query("tipo")
	if tipo != "" && !entity.IsValidProductType(tipo) {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "tipo debe ser ProductoTerminado o MateriaPrima")
	}
	productos, err := h.uc.GetAll(tipo)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, fmt.Sprintf("%d productos obtenidos correctamente", len(productos)), productos)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "id debe ser un entero")
	}
	producto, err := h.uc.GetByID(id)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	if producto == nil {
		return fail(c, fiber.StatusNotFound, "Producto no encontrado", "")
	}
	return success(c, fiber.StatusOK, "Producto obtenido correctamente", producto)
}

// GetByCode godoc
// @Summary      Obtener producto por código numérico
// @Tags         productos
// @Produce      json
// @Param        codigo  path  string  true  "Código numérico"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/productos/codigo/{codigo} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	producto, err := h.uc.GetByCode(c.Params("codigo"))
	if err != nil {
		return failDomain(c, err, h.production)
	}
	if producto == nil {
		return fail(c, fiber.StatusNotFound, "Producto no encontrado", "")
	}
	return success(c, fiber.StatusOK, "Producto obtenido correctamente", producto)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido", err.Error())
	}
	if errs := in.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}
	producto, err := h.uc.Create(in)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusCreated, "Producto creado correctamente", producto)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "id debe ser un entero")
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido", err.Error())
	}
	if errs := in.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}
	producto, err := h.uc.Update(id, in)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	if producto == nil {
		return fail(c, fiber.StatusNotFound, "Producto no encontrado", "")
	}
	return success(c, fiber.StatusOK, "Producto actualizado correctamente", producto)
}

// Delete godoc
// @Summary      Eliminar producto (borra en cascada sus movimientos)
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Errores de validación", "id debe ser un entero")
	}
	if err := h.uc.Delete(id); err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, "Producto eliminado correctamente", nil)
}

// AdjustStock godoc
// @Summary      Ajustar stock (ENTRADA/SALIDA) de forma transaccional
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código numérico"
// @Param        body    body  dto.AdjustStockRequest  true  "cantidad y tipo_movimiento"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/productos/stock/{codigo} [put]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido", err.Error())
	}
	if errs := in.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}
	result, err := h.adjust.Adjust(c.UserContext(), c.Params("codigo"), in.Cantidad, in.TipoMovimiento)
	if err != nil {
		return failDomain(c, err, h.production)
	}
	return success(c, fiber.StatusOK, "Stock actualizado correctamente", result)
}
