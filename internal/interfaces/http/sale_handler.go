package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
)

// SaleHandler maneja ventas en mostrador, consumos profesionales y el
// historial agrupado por transacción.
type SaleHandler struct {
	coordinator *ledger.Coordinator
	history     *usecase.HistoryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(coordinator *ledger.Coordinator, history *usecase.HistoryUseCase) *SaleHandler {
	return &SaleHandler{coordinator: coordinator, history: history}
}

// RecordSale godoc
// @Summary      Registrar venta en mostrador
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Líneas de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/sales [post]
func (h *SaleHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.coordinator.RecordSale(c.Context(), ledger.SaleInput{
		Items:      toBatchItems(in.Items),
		ClientID:   in.ClientID,
		TotalPrice: in.TotalPrice,
		Note:       in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := dto.SaleResponse{
		Movements:    make([]dto.MovementResponse, 0, len(result.Movements)),
		HomeProducts: make([]dto.HomeProductResponse, 0, len(result.HomeProducts)),
	}
	for _, m := range result.Movements {
		out.Movements = append(out.Movements, toMovementDTO(m))
	}
	for _, hp := range result.HomeProducts {
		out.HomeProducts = append(out.HomeProducts, dto.HomeProductResponse{
			ID:          hp.ID,
			ClientID:    hp.ClientID,
			MaterialID:  hp.MaterialID,
			PurchaseID:  hp.PurchaseID,
			Name:        hp.Name,
			Quantity:    hp.Quantity,
			Unit:        hp.Unit,
			PackageSize: hp.PackageSize,
			TotalPrice:  hp.TotalPrice,
			Note:        hp.Note,
			CreatedAt:   hp.CreatedAt,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordUsage godoc
// @Summary      Registrar consumo profesional
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsageRequest  true  "Líneas del consumo"
// @Success      201   {array}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/usages [post]
func (h *SaleHandler) RecordUsage(c *fiber.Ctx) error {
	var in dto.UsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movements, err := h.coordinator.RecordUsage(c.Context(), ledger.UsageInput{
		Items:    toBatchItems(in.Items),
		ClientID: in.ClientID,
		Note:     in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SalesHistory godoc
// @Summary      Historial de ventas y consumos agrupado por transacción
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        clientId  query  string  false  "Filtro por cliente"
// @Success      200  {array}  usecase.SaleGroupResponse
// @Router       /api/sales [get]
func (h *SaleHandler) SalesHistory(c *fiber.Ctx) error {
	out, err := h.history.SalesHistory(c.Query("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func toBatchItems(items []dto.BatchItemRequest) []ledger.BatchItem {
	out := make([]ledger.BatchItem, 0, len(items))
	for _, item := range items {
		out = append(out, ledger.BatchItem{MaterialID: item.MaterialID, Quantity: item.Quantity})
	}
	return out
}
