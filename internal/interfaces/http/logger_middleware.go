package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/suanlabs/inventario-api/pkg/logger"
)

// HeaderRequestID cabecera con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un request id y registra método, ruta, estatus y
// latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
