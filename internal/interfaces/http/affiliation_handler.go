package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
)

// AffiliationHandler maneja el ciclo de vida de las afiliaciones mensuales.
type AffiliationHandler struct {
	uc       *affiliation.AffiliationUseCase
	importer *affiliation.BulkImporter
}

// NewAffiliationHandler construye el handler.
func NewAffiliationHandler(uc *affiliation.AffiliationUseCase, importer *affiliation.BulkImporter) *AffiliationHandler {
	return &AffiliationHandler{uc: uc, importer: importer}
}

// List godoc
// @Summary      Afiliaciones activas de la oficina en el período
// @Tags         affiliations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ListAffiliationsRequest  true  "month, year, userId, officeId"
// @Success      200   {array}   dto.AffiliationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/affiliations [post]
func (h *AffiliationHandler) List(c *fiber.Ctx) error {
	var in dto.ListAffiliationsRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListInactive godoc
// @Summary      Histórico de afiliaciones desactivadas con su retiro
// @Tags         affiliations
// @Produce      json
// @Param        userId    query  int  true   "usuario"
// @Param        officeId  query  int  true   "oficina"
// @Param        month     query  int  false  "mes"
// @Param        year      query  int  false  "año"
// @Success      200   {array}   dto.InactiveAffiliationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/affiliations/history/inactive [get]
func (h *AffiliationHandler) ListInactive(c *fiber.Ctx) error {
	var q dto.InactiveHistoryQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListInactive(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Busca o crea el cliente y registra la afiliación del período
// @Tags         affiliations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientAffiliationRequest  true  "cliente + afiliación"
// @Success      201   {object}  dto.CreateClientAffiliationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients-and-affiliations [post]
func (h *AffiliationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientAffiliationRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Edit godoc
// @Summary      Edita afiliación, cliente y teléfonos en una transacción
// @Tags         affiliations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditAffiliationRequest  true  "afiliación + cliente"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/affiliations [put]
func (h *AffiliationHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditAffiliationRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Edit(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Afiliación actualizada correctamente"})
}

// UpdatePaid godoc
// @Summary      Cambia el estado de pago
// @Tags         affiliations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePaidRequest  true  "affiliationId, paid"
// @Success      200   {object}  dto.UpdatePaidResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/affiliations/paid [put]
func (h *AffiliationHandler) UpdatePaid(c *fiber.Ctx) error {
	var in dto.UpdatePaidRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdatePaid(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactiva (borrado lógico) una afiliación
// @Tags         affiliations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteAffiliationRequest  true  "affiliationId, userId"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/affiliations [delete]
func (h *AffiliationHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteAffiliationRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.SoftDelete(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Afiliación desactivada correctamente"})
}

// Rollover godoc
// @Summary      Copia al mes actual las afiliaciones del último mes con datos
// @Tags         affiliations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RolloverRequest  true  "office_id"
// @Success      200   {object}  dto.RolloverResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/monthly_affiliations [post]
func (h *AffiliationHandler) Rollover(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RolloverRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Rollover(c.UserContext(), userID, in.OfficeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BulkUpload godoc
// @Summary      Importa afiliaciones desde un CSV separado por punto y coma
// @Tags         affiliations
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        officeId  formData  int   true  "oficina"
// @Param        file      formData  file  true  "archivo CSV"
// @Success      200   {object}  dto.BulkUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/affiliations/bulk-upload [post]
func (h *AffiliationHandler) BulkUpload(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	officeID, err := strconv.ParseInt(c.FormValue("officeId"), 10, 64)
	if err != nil || officeID <= 0 {
		return respondError(c, domain.WithDetail(domain.ErrInvalidInput, "el campo 'officeId' es requerido"))
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.WithDetail(domain.ErrInvalidInput, "el campo 'file' es requerido"))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, domain.WithDetail(domain.ErrInvalidInput, "no se pudo abrir el archivo"))
	}
	defer f.Close()

	out, err := h.importer.Import(c.UserContext(), userID, officeID, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
