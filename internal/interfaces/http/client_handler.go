package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
)

// ClientHandler maneja clientes, grupos, notas y compras a casa.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        groupId  query  string  false  "Filtro por grupo ('all' = todos)"
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("groupId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClientResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
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
// @Summary      Borrar cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}

// CreateGroup godoc
// @Summary      Crear grupo de clientes
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre del grupo"
// @Success      201   {object}  dto.ClientGroupResponse
// @Router       /api/client-groups [post]
func (h *ClientHandler) CreateGroup(c *fiber.Ctx) error {
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
// @Summary      Listar grupos de clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientGroupResponse
// @Router       /api/client-groups [get]
func (h *ClientHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RenameGroup godoc
// @Summary      Renombrar grupo de clientes
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.NameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/client-groups/{id} [put]
func (h *ClientHandler) RenameGroup(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RenameGroup(c.Params("id"), in.Name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "grupo renombrado"})
}

// DeleteGroup godoc
// @Summary      Borrar grupo de clientes (no de sistema, sin miembros)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/client-groups/{id} [delete]
func (h *ClientHandler) DeleteGroup(c *fiber.Ctx) error {
	if err := h.uc.DeleteGroup(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "grupo eliminado"})
}

// AddNote godoc
// @Summary      Añadir nota al cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.ClientNoteRequest  true  "Texto"
// @Success      201   {object}  dto.ClientNoteResponse
// @Router       /api/clients/{id}/notes [post]
func (h *ClientHandler) AddNote(c *fiber.Ctx) error {
	var in dto.ClientNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddNote(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListNotes godoc
// @Summary      Notas del cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {array}  dto.ClientNoteResponse
// @Router       /api/clients/{id}/notes [get]
func (h *ClientHandler) ListNotes(c *fiber.Ctx) error {
	out, err := h.uc.ListNotes(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteNote godoc
// @Summary      Borrar nota
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del cliente"
// @Param        noteId  path  string  true  "ID de la nota"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/clients/{id}/notes/{noteId} [delete]
func (h *ClientHandler) DeleteNote(c *fiber.Ctx) error {
	if err := h.uc.DeleteNote(c.Params("noteId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "nota eliminada"})
}

// ListHomeProducts godoc
// @Summary      Compras a casa del cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {array}  dto.HomeProductResponse
// @Router       /api/clients/{id}/home-products [get]
func (h *ClientHandler) ListHomeProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListHomeProducts(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteHomeProduct godoc
// @Summary      Borrar compra a casa (la compra completa)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/home-products/{productId} [delete]
func (h *ClientHandler) DeleteHomeProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteHomeProduct(c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "compra eliminada"})
}
