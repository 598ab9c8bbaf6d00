package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/concesionario-pro/internal/application/dto"
)

// internalError registra el error real y responde 500 con un mensaje
// genérico: los detalles del store nunca viajan al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno del servidor",
	})
}
