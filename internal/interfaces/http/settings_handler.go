package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
	"github.com/supervisor-bit/HairBook-New/internal/infrastructure/backup"
)

// SettingsHandler maneja los datos del salón y la exportación de respaldo.
type SettingsHandler struct {
	uc       *usecase.SettingsUseCase
	exporter *backup.XMLExporter
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, exporter *backup.XMLExporter) *SettingsHandler {
	return &SettingsHandler{uc: uc, exporter: exporter}
}

// Get godoc
// @Summary      Datos del salón
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalonSettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar datos del salón
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalonSettingsRequest  true  "Datos del salón"
// @Success      200   {object}  dto.SalonSettingsResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.SalonSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar todos los datos como XML
// @Tags         settings
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/export [get]
func (h *SettingsHandler) Export(c *fiber.Ctx) error {
	data, err := h.exporter.Export()
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("hairbook-%s.xml", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
