package repository

import "github.com/supervisor-bit/HairBook-New/internal/domain/entity"

// HomeProductRepository define el puerto del historial de compras a casa.
type HomeProductRepository interface {
	Create(product *entity.HomeProduct) error
	GetByID(id string) (*entity.HomeProduct, error)
	ListByClient(clientID string) ([]*entity.HomeProduct, error)
	// DeleteByPurchase borra todas las líneas de una misma compra.
	DeleteByPurchase(purchaseID string) error
	Delete(id string) error
}
