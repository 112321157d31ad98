package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/unsubscription"
)

// UnsubscriptionHandler registro y corrección de retiros.
type UnsubscriptionHandler struct {
	uc *unsubscription.UnsubscriptionUseCase
}

// NewUnsubscriptionHandler construye el handler.
func NewUnsubscriptionHandler(uc *unsubscription.UnsubscriptionUseCase) *UnsubscriptionHandler {
	return &UnsubscriptionHandler{uc: uc}
}

// Create godoc
// @Summary      Registra el retiro de una afiliación
// @Tags         unsubscriptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnsubscriptionRequest  true  "affiliationId, userId, reason, cost, observation"
// @Success      201   {object}  dto.UnsubscriptionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/affiliations/unsubscriptions [post]
func (h *UnsubscriptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnsubscriptionRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Corrige motivo, costo u observación de un retiro
// @Tags         unsubscriptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUnsubscriptionRequest  true  "id + campos a cambiar"
// @Success      200   {object}  dto.UnsubscriptionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/affiliations/unsubscriptions/update [put]
func (h *UnsubscriptionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUnsubscriptionRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
