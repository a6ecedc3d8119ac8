package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// VisitUseCase borradores de visita: servicios, líneas de material, duplicado
// y borrado. El cierre (el único camino que toca stock) va por el coordinador.
type VisitUseCase struct {
	visits   repository.VisitRepository
	clients  repository.ClientRepository
	services repository.ServiceRepository
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(
	visits repository.VisitRepository,
	clients repository.ClientRepository,
	services repository.ServiceRepository,
) *VisitUseCase {
	return &VisitUseCase{visits: visits, clients: clients, services: services}
}

// Create abre un borrador para un cliente existente.
func (uc *VisitUseCase) Create(in dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	visit := &entity.Visit{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Status:    entity.VisitStatusSaved,
		CreatedAt: time.Now(),
	}
	if err := uc.visits.Create(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// GetByID visita con servicios y materiales, o ErrNotFound.
func (uc *VisitUseCase) GetByID(id string) (*dto.VisitResponse, error) {
	visit, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// ListByClient visitas del cliente, recientes primero.
func (uc *VisitUseCase) ListByClient(clientID string) ([]dto.VisitResponse, error) {
	if clientID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.visits.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VisitResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVisitResponse(v))
	}
	return out, nil
}

// Update edita nota y precio. Solo borradores; una closed es inmutable.
func (uc *VisitUseCase) Update(id string, in dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	visit, err := uc.mustGetSaved(id)
	if err != nil {
		return nil, err
	}
	if err := uc.visits.Update(id, in.Note, in.TotalPrice); err != nil {
		return nil, err
	}
	visit.Note = in.Note
	visit.TotalPrice = in.TotalPrice
	return toVisitResponse(visit), nil
}

// Delete borra la visita en cualquier estado. No revierte consumo: las saved
// nunca tocaron stock y el consumo de las closed es definitivo.
func (uc *VisitUseCase) Delete(id string) error {
	if _, err := uc.mustGet(id); err != nil {
		return err
	}
	return uc.visits.Delete(id)
}

// Duplicate copia servicios y líneas de material en un borrador nuevo.
func (uc *VisitUseCase) Duplicate(id string) (*dto.VisitResponse, error) {
	source, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}
	copyVisit := &entity.Visit{
		ID:        uuid.New().String(),
		ClientID:  source.ClientID,
		Status:    entity.VisitStatusSaved,
		Note:      source.Note,
		CreatedAt: time.Now(),
	}
	if err := uc.visits.Create(copyVisit); err != nil {
		return nil, err
	}
	for _, svc := range source.Services {
		vs := &entity.VisitService{
			ID:        uuid.New().String(),
			VisitID:   copyVisit.ID,
			ServiceID: svc.ServiceID,
			Order:     svc.Order,
		}
		if err := uc.visits.AddService(vs); err != nil {
			return nil, err
		}
		for _, vm := range svc.Materials {
			if err := uc.visits.AddMaterial(&entity.VisitMaterial{
				ID:             uuid.New().String(),
				VisitServiceID: vs.ID,
				MaterialID:     vm.MaterialID,
				Quantity:       vm.Quantity,
				Unit:           vm.Unit,
			}); err != nil {
				return nil, err
			}
		}
	}
	return uc.GetByID(copyVisit.ID)
}

// AddService añade un servicio al final del orden del borrador.
func (uc *VisitUseCase) AddService(visitID string, in dto.AddVisitServiceRequest) (*dto.VisitServiceResponse, error) {
	if _, err := uc.mustGetSaved(visitID); err != nil {
		return nil, err
	}
	service, err := uc.services.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	maxOrder, err := uc.visits.MaxServiceOrder(visitID)
	if err != nil {
		return nil, err
	}
	vs := &entity.VisitService{
		ID:        uuid.New().String(),
		VisitID:   visitID,
		ServiceID: in.ServiceID,
		Order:     maxOrder + 1,
	}
	if err := uc.visits.AddService(vs); err != nil {
		return nil, err
	}
	return &dto.VisitServiceResponse{ID: vs.ID, ServiceID: vs.ServiceID, Order: vs.Order}, nil
}

// RemoveService quita un servicio (y sus líneas) del borrador.
func (uc *VisitUseCase) RemoveService(visitID, visitServiceID string) error {
	if _, err := uc.mustGetSaved(visitID); err != nil {
		return err
	}
	return uc.visits.RemoveService(visitID, visitServiceID)
}

// AddMaterial registra una línea de consumo en un servicio del borrador.
func (uc *VisitUseCase) AddMaterial(visitID, visitServiceID string, in dto.VisitMaterialRequest) (*dto.VisitMaterialResponse, error) {
	if err := uc.validateMaterialLine(visitID, in); err != nil {
		return nil, err
	}
	vm := &entity.VisitMaterial{
		ID:             uuid.New().String(),
		VisitServiceID: visitServiceID,
		MaterialID:     in.MaterialID,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
	}
	if err := uc.visits.AddMaterial(vm); err != nil {
		return nil, err
	}
	return &dto.VisitMaterialResponse{ID: vm.ID, MaterialID: vm.MaterialID, Quantity: vm.Quantity, Unit: vm.Unit}, nil
}

// UpdateMaterial corrige cantidad/unidad de una línea del borrador.
func (uc *VisitUseCase) UpdateMaterial(visitID, visitServiceID, materialID string, in dto.VisitMaterialRequest) error {
	if err := uc.validateMaterialLine(visitID, in); err != nil {
		return err
	}
	return uc.visits.UpdateMaterial(&entity.VisitMaterial{
		VisitServiceID: visitServiceID,
		MaterialID:     materialID,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
	})
}

// RemoveMaterial quita una línea de consumo del borrador.
func (uc *VisitUseCase) RemoveMaterial(visitID, visitServiceID, materialID string) error {
	if _, err := uc.mustGetSaved(visitID); err != nil {
		return err
	}
	return uc.visits.RemoveMaterial(visitServiceID, materialID)
}

func (uc *VisitUseCase) validateMaterialLine(visitID string, in dto.VisitMaterialRequest) error {
	if _, err := uc.mustGetSaved(visitID); err != nil {
		return err
	}
	if in.MaterialID == "" || !in.Quantity.IsPositive() || !entity.ValidUnit(in.Unit) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *VisitUseCase) mustGet(id string) (*entity.Visit, error) {
	visit, err := uc.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, domain.ErrNotFound
	}
	return visit, nil
}

func (uc *VisitUseCase) mustGetSaved(id string) (*entity.Visit, error) {
	visit, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}
	if visit.Status != entity.VisitStatusSaved {
		return nil, domain.ErrConflict
	}
	return visit, nil
}

func toVisitResponse(v *entity.Visit) *dto.VisitResponse {
	resp := &dto.VisitResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		Status:     v.Status,
		Note:       v.Note,
		TotalPrice: v.TotalPrice,
		Services:   make([]dto.VisitServiceResponse, 0, len(v.Services)),
		CreatedAt:  v.CreatedAt,
		ClosedAt:   v.ClosedAt,
	}
	for _, svc := range v.Services {
		vs := dto.VisitServiceResponse{
			ID:        svc.ID,
			ServiceID: svc.ServiceID,
			Order:     svc.Order,
			Materials: make([]dto.VisitMaterialResponse, 0, len(svc.Materials)),
		}
		for _, vm := range svc.Materials {
			vs.Materials = append(vs.Materials, dto.VisitMaterialResponse{
				ID:         vm.ID,
				MaterialID: vm.MaterialID,
				Quantity:   vm.Quantity,
				Unit:       vm.Unit,
			})
		}
		resp.Services = append(resp.Services, vs)
	}
	return resp
}
