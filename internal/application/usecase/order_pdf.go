package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// OrderPDFLine es una línea de la orden ya resuelta contra el catálogo de
// materiales, lista para el render.
type OrderPDFLine struct {
	MaterialName string
	Unit         string
	PackageSize  decimal.Decimal
	Quantity     decimal.Decimal // en paquetes
	Price        *decimal.Decimal
}

// OrderPDFGenerator es el puerto del render del PDF de la orden de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, lines []OrderPDFLine, salon *entity.SalonSettings) ([]byte, error)
}

// GeneratePDF resuelve los nombres de material y los datos del salón y delega
// el render al generador.
func (uc *OrderUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]OrderPDFLine, 0, len(order.Items))
	for _, item := range order.Items {
		line := OrderPDFLine{
			MaterialName: item.MaterialID, // fallback si el material ya no existe
			Quantity:     item.Quantity,
			Price:        item.Price,
		}
		material, err := uc.materials.GetByID(item.MaterialID)
		if err != nil {
			return nil, err
		}
		if material != nil {
			line.MaterialName = material.Name
			line.Unit = material.Unit
			line.PackageSize = material.PackageSize
		}
		lines = append(lines, line)
	}

	salon, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if salon == nil {
		salon = &entity.SalonSettings{}
	}
	return uc.pdfGen.GenerateOrderPDF(ctx, order, lines, salon)
}
