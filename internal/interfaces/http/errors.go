package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
)

// errorKind relación error de dominio → status HTTP + código.
type errorKind struct {
	err    error
	status int
	code   string
}

// El orden importa: los errores más específicos van primero.
var errorKinds = []errorKind{
	{domain.ErrInvalidPaymentStatus, fiber.StatusBadRequest, "INVALID_PAYMENT_STATUS"},
	{domain.ErrCatalogEntryNotFound, fiber.StatusBadRequest, "CATALOG_ENTRY_NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
}

// respondError traduce err al cuerpo dto.ErrorResponse. Los errores no clasificados
// se registran con su causa y se responden como 500 sin detalle.
func respondError(c *fiber.Ctx, err error) error {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return c.Status(k.status).JSON(dto.ErrorResponse{Code: k.code, Message: err.Error()})
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}

// ErrorHandler manejador global de Fiber para errores que escapan de los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return respondError(c, err)
}
