package repository

import (
	"time"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de compra.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error) // con items
	List() ([]*entity.Order, error)
	// UpdateStatus avanza la orden solo si su estado actual es `from`;
	// si otro proceso ya la movió devuelve ErrConflict.
	UpdateStatus(id, from, to string, orderedAt, deliveredAt *time.Time) error
	Delete(id string) error
}
