package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/afiliaciones-api/internal/application/catalog"
	"github.com/jhoicas/afiliaciones-api/internal/application/client"
	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
)

// ClientHandler alta directa de clientes.
type ClientHandler struct {
	uc *client.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *client.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Registra un cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "fullName, identification, companyId, phones"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CatalogHandler catálogos de referencia.
type CatalogHandler struct {
	uc *catalog.ListsUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.ListsUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Lists godoc
// @Summary      EPS, ARL, CCF, fondos de pensión y empresas
// @Tags         lists
// @Produce      json
// @Success      200   {object}  dto.ListsResponse
// @Router       /api/lists [get]
func (h *CatalogHandler) Lists(c *fiber.Ctx) error {
	out, err := h.uc.GetLists(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
