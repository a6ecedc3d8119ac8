package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// VisitRepository define el puerto de persistencia para visitas y sus líneas.
type VisitRepository interface {
	Create(visit *entity.Visit) error
	// GetByID carga la visita con servicios y materiales.
	GetByID(id string) (*entity.Visit, error)
	ListByClient(clientID string) ([]*entity.Visit, error)
	// Update escribe note y totalPrice del borrador.
	Update(id string, note string, totalPrice *decimal.Decimal) error
	// Close marca la visita como cerrada (terminal).
	Close(id string, note string, totalPrice *decimal.Decimal, closedAt time.Time) error
	Delete(id string) error

	AddService(vs *entity.VisitService) error
	RemoveService(visitID, visitServiceID string) error
	MaxServiceOrder(visitID string) (int, error)

	AddMaterial(vm *entity.VisitMaterial) error
	UpdateMaterial(vm *entity.VisitMaterial) error
	RemoveMaterial(visitServiceID, materialID string) error
}
