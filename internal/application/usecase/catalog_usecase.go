package usecase

import (
	"github.com/google/uuid"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// CatalogUseCase catálogo de servicios del salón: grupos ordenados y servicios
// dentro de cada grupo.
type CatalogUseCase struct {
	services repository.ServiceRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(services repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services}
}

// CreateGroup crea un grupo de servicios al final del orden.
func (uc *CatalogUseCase) CreateGroup(name string) (*dto.ServiceGroupResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	maxOrder, err := uc.services.MaxGroupOrder()
	if err != nil {
		return nil, err
	}
	group := &entity.ServiceGroup{ID: uuid.New().String(), Name: name, Order: maxOrder + 1}
	if err := uc.services.CreateGroup(group); err != nil {
		return nil, err
	}
	return &dto.ServiceGroupResponse{ID: group.ID, Name: group.Name, Order: group.Order, Services: []dto.ServiceResponse{}}, nil
}

// ListGroups grupos con sus servicios, todo por orden.
func (uc *CatalogUseCase) ListGroups() ([]dto.ServiceGroupResponse, error) {
	groups, err := uc.services.ListGroups()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceGroupResponse, 0, len(groups))
	for _, g := range groups {
		services, err := uc.services.ListByGroup(g.ID)
		if err != nil {
			return nil, err
		}
		resp := dto.ServiceGroupResponse{
			ID:       g.ID,
			Name:     g.Name,
			Order:    g.Order,
			Services: make([]dto.ServiceResponse, 0, len(services)),
		}
		for _, s := range services {
			resp.Services = append(resp.Services, toServiceResponse(s))
		}
		out = append(out, resp)
	}
	return out, nil
}

// DeleteGroup borra un grupo vacío; con servicios devuelve ErrConflict.
func (uc *CatalogUseCase) DeleteGroup(id string) error {
	services, err := uc.services.ListByGroup(id)
	if err != nil {
		return err
	}
	if len(services) > 0 {
		return domain.ErrConflict
	}
	return uc.services.DeleteGroup(id)
}

// CreateService añade un servicio al final del orden de su grupo.
func (uc *CatalogUseCase) CreateService(groupID, name string) (*dto.ServiceResponse, error) {
	if groupID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	maxOrder, err := uc.services.MaxOrder(groupID)
	if err != nil {
		return nil, err
	}
	service := &entity.Service{ID: uuid.New().String(), GroupID: groupID, Name: name, Order: maxOrder + 1}
	if err := uc.services.Create(service); err != nil {
		return nil, err
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// DeleteService borra un servicio del catálogo. Las visitas que lo referencian
// conservan su línea histórica.
func (uc *CatalogUseCase) DeleteService(id string) error {
	service, err := uc.services.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.services.Delete(id)
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{ID: s.ID, GroupID: s.GroupID, Name: s.Name, Order: s.Order}
}
