package repository

import (
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para materiales.
// El saldo (StockQuantity) solo se escribe vía UpdateStock, dentro de la
// transacción del coordinador.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Material, error)
	List(groupID string) ([]*entity.Material, error)
	// ListBelowMinStock devuelve los materiales con saldo <= MinStock (> 0).
	ListBelowMinStock() ([]*entity.Material, error)
	Update(material *entity.Material) error
	UpdateStock(id string, quantity decimal.Decimal) error
	Delete(id string) error
}

// MaterialGroupRepository define el puerto para los grupos de materiales.
type MaterialGroupRepository interface {
	Create(group *entity.MaterialGroup) error
	GetByID(id string) (*entity.MaterialGroup, error)
	List() ([]*entity.MaterialGroup, error)
	MaxOrder() (int, error)
	Delete(id string) error
}
