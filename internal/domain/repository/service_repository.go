package repository

import "github.com/supervisor-bit/HairBook-New/internal/domain/entity"

// ServiceRepository define el puerto del catálogo de servicios.
type ServiceRepository interface {
	CreateGroup(group *entity.ServiceGroup) error
	ListGroups() ([]*entity.ServiceGroup, error)
	MaxGroupOrder() (int, error)
	DeleteGroup(id string) error

	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	ListByGroup(groupID string) ([]*entity.Service, error)
	MaxOrder(groupID string) (int, error)
	Delete(id string) error
}
