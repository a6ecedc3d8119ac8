package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
)

// VisitHandler maneja visitas: borradores, servicios, líneas de material,
// duplicado y cierre (el cierre descuenta stock vía el coordinador).
type VisitHandler struct {
	uc          *usecase.VisitUseCase
	coordinator *ledger.Coordinator
}

// NewVisitHandler construye el handler.
func NewVisitHandler(uc *usecase.VisitUseCase, coordinator *ledger.Coordinator) *VisitHandler {
	return &VisitHandler{uc: uc, coordinator: coordinator}
}

// Create godoc
// @Summary      Abrir borrador de visita
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "Cliente"
// @Success      201   {object}  dto.VisitResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByClient godoc
// @Summary      Visitas de un cliente
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        clientId  query  string  true  "ID del cliente"
// @Success      200  {array}  dto.VisitResponse
// @Router       /api/visits [get]
func (h *VisitHandler) ListByClient(c *fiber.Ctx) error {
	out, err := h.uc.ListByClient(c.Query("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener visita por ID
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.VisitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visits/{id} [get]
func (h *VisitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar nota y precio del borrador
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la visita"
// @Param        body  body  dto.UpdateVisitRequest  true  "Nota y precio"
// @Success      200   {object}  dto.VisitResponse
// @Failure      409   {object}  dto.ErrorResponse  "visita cerrada"
// @Router       /api/visits/{id} [put]
func (h *VisitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar visita (descuenta materiales)
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la visita"
// @Param        body  body  dto.CloseVisitRequest  false  "Precio y nota finales"
// @Success      200   {object}  dto.VisitResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya cerrada"
// @Router       /api/visits/{id}/close [post]
func (h *VisitHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseVisitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	visit, err := h.coordinator.CloseVisit(c.Context(), c.Params("id"), ledger.CloseVisitInput{
		TotalPrice: in.TotalPrice,
		Note:       in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	// Releer con servicios para devolver la visita completa.
	out, err := h.uc.GetByID(visit.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Duplicate godoc
// @Summary      Duplicar visita en un borrador nuevo
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita origen"
// @Success      201  {object}  dto.VisitResponse
// @Router       /api/visits/{id}/duplicate [post]
func (h *VisitHandler) Duplicate(c *fiber.Ctx) error {
	out, err := h.uc.Duplicate(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar visita (no revierte consumo)
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la visita"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/visits/{id} [delete]
func (h *VisitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "visita eliminada"})
}

// AddService godoc
// @Summary      Añadir servicio al borrador
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la visita"
// @Param        body  body  dto.AddVisitServiceRequest  true  "Servicio"
// @Success      201   {object}  dto.VisitServiceResponse
// @Router       /api/visits/{id}/services [post]
func (h *VisitHandler) AddService(c *fiber.Ctx) error {
	var in dto.AddVisitServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddService(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveService godoc
// @Summary      Quitar servicio del borrador
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id         path  string  true  "ID de la visita"
// @Param        serviceId  path  string  true  "ID del servicio de la visita"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/visits/{id}/services/{serviceId} [delete]
func (h *VisitHandler) RemoveService(c *fiber.Ctx) error {
	if err := h.uc.RemoveService(c.Params("id"), c.Params("serviceId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "servicio eliminado"})
}

// AddMaterial godoc
// @Summary      Registrar línea de material en un servicio
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID de la visita"
// @Param        serviceId  path  string  true  "ID del servicio de la visita"
// @Param        body       body  dto.VisitMaterialRequest  true  "Material y cantidad"
// @Success      201  {object}  dto.VisitMaterialResponse
// @Router       /api/visits/{id}/services/{serviceId}/materials [post]
func (h *VisitHandler) AddMaterial(c *fiber.Ctx) error {
	var in dto.VisitMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddMaterial(c.Params("id"), c.Params("serviceId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMaterial godoc
// @Summary      Corregir línea de material
// @Tags         visits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID de la visita"
// @Param        serviceId   path  string  true  "ID del servicio de la visita"
// @Param        materialId  path  string  true  "ID del material"
// @Param        body        body  dto.VisitMaterialRequest  true  "Cantidad y unidad"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/visits/{id}/services/{serviceId}/materials/{materialId} [put]
func (h *VisitHandler) UpdateMaterial(c *fiber.Ctx) error {
	var in dto.VisitMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MaterialID == "" {
		in.MaterialID = c.Params("materialId")
	}
	if err := h.uc.UpdateMaterial(c.Params("id"), c.Params("serviceId"), c.Params("materialId"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea actualizada"})
}

// RemoveMaterial godoc
// @Summary      Quitar línea de material
// @Tags         visits
// @Security     Bearer
// @Produce      json
// @Param        id          path  string  true  "ID de la visita"
// @Param        serviceId   path  string  true  "ID del servicio de la visita"
// @Param        materialId  path  string  true  "ID del material"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/visits/{id}/services/{serviceId}/materials/{materialId} [delete]
func (h *VisitHandler) RemoveMaterial(c *fiber.Ctx) error {
	if err := h.uc.RemoveMaterial(c.Params("id"), c.Params("serviceId"), c.Params("materialId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
