package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/suanlabs/inventario-api/internal/application/dto"
	"github.com/suanlabs/inventario-api/internal/domain"
)

// success responde con el sobre {success: true, message, data}.
func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// fail responde con el sobre {success: false, message, error}.
func fail(c *fiber.Ctx, status int, message, detail string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message, Error: detail})
}

// failDomain traduce un error a estatus HTTP y sobre de error. Los errores de
// dominio son resultados esperados y llevan su mensaje; cualquier otro error es
// un 500 y en producción no se filtra el detalle interno al cliente.
func failDomain(c *fiber.Ctx, err error, production bool) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Recurso no encontrado", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "Entrada inválida", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, "Stock insuficiente", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "Recurso duplicado", err.Error())
	case errors.Is(err, domain.ErrCodeTaken):
		return fail(c, fiber.StatusConflict, "Código numérico en uso", err.Error())
	case errors.Is(err, domain.ErrCodesExhausted):
		return fail(c, fiber.StatusConflict, "No hay códigos numéricos disponibles", err.Error())
	}
	detail := ""
	if !production {
		detail = err.Error()
	}
	return fail(c, fiber.StatusInternalServerError, "Error interno del servidor", detail)
}

// failValidation responde 400 con la lista de errores de validación.
func failValidation(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "Errores de validación",
		Data:    errs,
	})
}
