package repository

import (
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos. Append-only:
// no existe update ni delete de entradas individuales.
type MovementRepository interface {
	Create(movement *entity.MaterialMovement) error
	// ListByMaterial lista por recencia; typeFilter vacío = todas las causas.
	ListByMaterial(materialID, typeFilter string, limit int) ([]*entity.MaterialMovement, error)
	// ListByTypes alimenta el historial de ventas/consumos; clientID vacío = todos.
	ListByTypes(types []string, clientID string) ([]*entity.MaterialMovement, error)
	// CountByMaterial soporta el guard de borrado de materiales.
	CountByMaterial(materialID string) (int, error)
	// SumByMaterial devuelve la suma con signo del libro (proyección del saldo).
	SumByMaterial(materialID string) (decimal.Decimal, error)
}
