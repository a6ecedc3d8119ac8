package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
)

// CatalogHandler maneja el catálogo de servicios del salón.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListGroups godoc
// @Summary      Catálogo: grupos con sus servicios
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ServiceGroupResponse
// @Router       /api/service-groups [get]
func (h *CatalogHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateGroup godoc
// @Summary      Crear grupo de servicios
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre del grupo"
// @Success      201   {object}  dto.ServiceGroupResponse
// @Router       /api/service-groups [post]
func (h *CatalogHandler) CreateGroup(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateGroup(in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteGroup godoc
// @Summary      Borrar grupo de servicios vacío
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-groups/{id} [delete]
func (h *CatalogHandler) DeleteGroup(c *fiber.Ctx) error {
	if err := h.uc.DeleteGroup(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "grupo eliminado"})
}

// CreateService godoc
// @Summary      Crear servicio en un grupo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.NameRequest  true  "Nombre del servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Router       /api/service-groups/{id}/services [post]
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateService(c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteService godoc
// @Summary      Borrar servicio
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.uc.DeleteService(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "servicio eliminado"})
}
