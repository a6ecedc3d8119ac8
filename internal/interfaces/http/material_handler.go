package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
)

// MaterialHandler maneja materiales, grupos, su libro de movimientos y los
// ajustes manuales.
type MaterialHandler struct {
	uc          *usecase.MaterialUseCase
	coordinator *ledger.Coordinator
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase, coordinator *ledger.Coordinator) *MaterialHandler {
	return &MaterialHandler{uc: uc, coordinator: coordinator}
}

// Create godoc
// @Summary      Crear material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "Datos del material"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar materiales
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        groupId  query  string  false  "Filtro por grupo ('all' = todos)"
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("groupId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener material por ID
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ficha del material (sin stock)
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar material (solo con libro vacío)
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del material"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "material eliminado"})
}

// ListMovements godoc
// @Summary      Libro de movimientos del material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del material"
// @Param        type   query  string  false  "Filtro por causa"
// @Param        limit  query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/materials/{id}/movements [get]
func (h *MaterialHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.Params("id"), c.Query("type"), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordMovement godoc
// @Summary      Ajuste manual de stock
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.ManualMovementRequest  true  "Causa y cantidad"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/movements [post]
func (h *MaterialHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.ManualMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.coordinator.RecordManualMovement(c.Context(), c.Params("id"), ledger.ManualMovementInput{
		Type:     in.Type,
		Quantity: in.Quantity,
		Note:     in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:            movement.ID,
		MaterialID:    movement.MaterialID,
		TransactionID: movement.TransactionID,
		Type:          movement.Type,
		Quantity:      movement.Quantity,
		Note:          movement.Note,
		CreatedAt:     movement.CreatedAt,
	})
}

// CheckLowStock godoc
// @Summary      Materiales bajo su umbral de reposición
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials/low-stock [get]
func (h *MaterialHandler) CheckLowStock(c *fiber.Ctx) error {
	out, err := h.uc.CheckLowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BulkImport godoc
// @Summary      Carga inicial: grupos con sus materiales en un solo lote
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkImportRequest  true  "Grupos y materiales"
// @Success      201   {object}  dto.BulkImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/bulk [post]
func (h *MaterialHandler) BulkImport(c *fiber.Ctx) error {
	var in dto.BulkImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BulkImport(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateGroup godoc
// @Summary      Crear grupo de materiales
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre del grupo"
// @Success      201   {object}  dto.MaterialGroupResponse
// @Router       /api/material-groups [post]
func (h *MaterialHandler) CreateGroup(c *fiber.Ctx) error {
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

// ListGroups godoc
// @Summary      Listar grupos de materiales
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialGroupResponse
// @Router       /api/material-groups [get]
func (h *MaterialHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
