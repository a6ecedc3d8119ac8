package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
	"github.com/supervisor-bit/HairBook-New/internal/domain/stock"
)

// CloseVisitInput precio y nota finales de la visita.
type CloseVisitInput struct {
	TotalPrice *decimal.Decimal
	Note       string
}

// CloseVisit cierra la visita (saved -> closed, terminal) y descuenta cada
// línea de material de cada servicio, convirtiendo la cantidad registrada a
// paquetes según la unidad. El débito es incondicional: el saldo puede quedar
// negativo. Una visita ya cerrada no se puede volver a cerrar.
func (c *Coordinator) CloseVisit(ctx context.Context, visitID string, in CloseVisitInput) (*entity.Visit, error) {
	visit, err := c.visits.GetByID(visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, domain.ErrNotFound
	}
	if visit.Status == entity.VisitStatusClosed {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	txID := uuid.New().String()

	err = c.txRunner.RunVisit(ctx, func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
		visits repository.VisitRepository,
	) error {
		if err := visits.Close(visit.ID, in.Note, in.TotalPrice, now); err != nil {
			return err
		}
		for _, service := range visit.Services {
			for _, vm := range service.Materials {
				material, err := materials.GetForUpdate(vm.MaterialID)
				if err != nil {
					return err
				}
				if material == nil {
					return domain.ErrNotFound
				}
				packages, err := stock.Packages(vm.Unit, vm.Quantity, material.PackageSize)
				if err != nil {
					return err
				}
				if _, err := applyDebit(materials, movements, material, packages, movementParams{
					movType:       entity.MovementVisit,
					transactionID: txID,
					visitID:       visit.ID,
					note:          noteVisitConsumed,
					createdAt:     now,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	visit.Status = entity.VisitStatusClosed
	visit.Note = in.Note
	visit.TotalPrice = in.TotalPrice
	visit.ClosedAt = &now
	return visit, nil
}
