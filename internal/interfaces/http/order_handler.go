package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// OrderHandler maneja órdenes de compra: ciclo de vida, entrega y PDF.
type OrderHandler struct {
	uc          *usecase.OrderUseCase
	coordinator *ledger.Coordinator
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, coordinator *ledger.Coordinator) *OrderHandler {
	return &OrderHandler{uc: uc, coordinator: coordinator}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Líneas de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar orden a ordered
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status != entity.OrderStatusOrdered {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solo se permite el estado 'ordered'; la entrega va por /deliver"})
	}
	out, err := h.uc.MarkOrdered(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deliver godoc
// @Summary      Marcar orden como entregada (acredita stock)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.DeliveryRequest  false  "Ajustes del albarán"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/deliver [post]
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	var in dto.DeliveryRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	result, err := h.coordinator.RecordDelivery(c.Context(), c.Params("id"), ledger.DeliveryInput{
		Overrides: in.Overrides,
		Extra:     toBatchItems(in.Extra),
	})
	if err != nil {
		return respondError(c, err)
	}
	out := dto.DeliveryResponse{
		Order:     toOrderDTO(result.Order),
		Movements: make([]dto.MovementResponse, 0, len(result.Movements)),
	}
	for _, m := range result.Movements {
		out.Movements = append(out.Movements, toMovementDTO(m))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada"})
}

// DownloadPDF godoc
// @Summary      Descargar la orden como PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.uc.GeneratePDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="objednavka-%s.pdf"`, id))
	return c.Send(data)
}
