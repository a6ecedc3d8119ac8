package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// Colación checa para ordenar nombres con diacríticos (č, ř, ž...) como lo
// haría la peluquera, no como los ordena el byte-order de la base.
var czechCollator = collate.New(language.Czech)

// MaterialUseCase CRUD de materiales y sus grupos. El stock nunca se edita
// aquí: solo se mueve a través del coordinador de movimientos.
type MaterialUseCase struct {
	materials repository.MaterialRepository
	groups    repository.MaterialGroupRepository
	movements repository.MovementRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(
	materials repository.MaterialRepository,
	groups repository.MaterialGroupRepository,
	movements repository.MovementRepository,
) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, groups: groups, movements: movements}
}

// Create da de alta un material. El stock inicial se acepta solo aquí.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.PackageSize.Sign() <= 0 || in.StockQuantity.Sign() < 0 || in.MinStock.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.Material{
		ID:              uuid.New().String(),
		GroupID:         in.GroupID,
		Name:            in.Name,
		Unit:            in.Unit,
		PackageSize:     in.PackageSize,
		StockQuantity:   in.StockQuantity,
		MinStock:        in.MinStock,
		IsRetailProduct: in.IsRetailProduct,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.materials.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID devuelve la ficha o ErrNotFound.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// List lista materiales (groupID vacío o "all" = todos), en orden checo.
func (uc *MaterialUseCase) List(groupID string) ([]dto.MaterialResponse, error) {
	if groupID == "all" {
		groupID = ""
	}
	list, err := uc.materials.List(groupID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return czechCollator.CompareString(list[i].Name, list[j].Name) < 0
	})
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// Update edita la ficha. stockQuantity no es editable a propósito.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.GroupID != nil {
		material.GroupID = *in.GroupID
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		material.Unit = *in.Unit
	}
	if in.PackageSize != nil {
		if in.PackageSize.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		material.PackageSize = *in.PackageSize
	}
	if in.MinStock != nil {
		if in.MinStock.Sign() < 0 {
			return nil, domain.ErrInvalidInput
		}
		material.MinStock = *in.MinStock
	}
	if in.IsRetailProduct != nil {
		material.IsRetailProduct = *in.IsRetailProduct
	}
	material.UpdatedAt = time.Now()
	if err := uc.materials.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Delete borra un material solo si su libro está vacío; con movimientos
// devuelve ErrConflict (el historial es inmutable).
func (uc *MaterialUseCase) Delete(id string) error {
	material, err := uc.materials.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movements.CountByMaterial(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.materials.Delete(id)
}

// ListMovements historial de un material, por recencia.
func (uc *MaterialUseCase) ListMovements(materialID, typeFilter string, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	material, err := uc.materials.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movements.ListByMaterial(materialID, typeFilter, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// CheckLowStock materiales en o bajo su umbral de reposición (minStock > 0).
func (uc *MaterialUseCase) CheckLowStock() ([]dto.MaterialResponse, error) {
	list, err := uc.materials.ListBelowMinStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// CreateGroup crea un grupo de materiales al final del orden.
func (uc *MaterialUseCase) CreateGroup(name string) (*dto.MaterialGroupResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	maxOrder, err := uc.groups.MaxOrder()
	if err != nil {
		return nil, err
	}
	group := &entity.MaterialGroup{
		ID:        uuid.New().String(),
		Name:      name,
		Order:     maxOrder + 1,
		CreatedAt: time.Now(),
	}
	if err := uc.groups.Create(group); err != nil {
		return nil, err
	}
	return &dto.MaterialGroupResponse{ID: group.ID, Name: group.Name, Order: group.Order}, nil
}

// BulkImport da de alta varios grupos con sus materiales en una sola llamada
// (carga inicial del almacén). Valida el lote completo antes de crear nada,
// para que una fila inválida no deje el import a medias.
func (uc *MaterialUseCase) BulkImport(in dto.BulkImportRequest) (*dto.BulkImportResponse, error) {
	if len(in.Groups) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, g := range in.Groups {
		if g.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		for _, m := range g.Materials {
			if m.Name == "" || !entity.ValidUnit(m.Unit) {
				return nil, domain.ErrInvalidInput
			}
			if m.PackageSize.Sign() <= 0 || m.StockQuantity.Sign() < 0 || m.MinStock.Sign() < 0 {
				return nil, domain.ErrInvalidInput
			}
		}
	}
	maxOrder, err := uc.groups.MaxOrder()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := &dto.BulkImportResponse{}
	for i, g := range in.Groups {
		group := &entity.MaterialGroup{
			ID:        uuid.New().String(),
			Name:      g.Name,
			Order:     maxOrder + i + 1,
			CreatedAt: now,
		}
		if err := uc.groups.Create(group); err != nil {
			return nil, err
		}
		out.Groups = append(out.Groups, dto.MaterialGroupResponse{ID: group.ID, Name: group.Name, Order: group.Order})
		for _, m := range g.Materials {
			material := &entity.Material{
				ID:              uuid.New().String(),
				GroupID:         group.ID,
				Name:            m.Name,
				Unit:            m.Unit,
				PackageSize:     m.PackageSize,
				StockQuantity:   m.StockQuantity,
				MinStock:        m.MinStock,
				IsRetailProduct: m.IsRetailProduct,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := uc.materials.Create(material); err != nil {
				return nil, err
			}
			out.Materials = append(out.Materials, *toMaterialResponse(material))
		}
	}
	return out, nil
}

// ListGroups grupos por orden.
func (uc *MaterialUseCase) ListGroups() ([]dto.MaterialGroupResponse, error) {
	list, err := uc.groups.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialGroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.MaterialGroupResponse{ID: g.ID, Name: g.Name, Order: g.Order})
	}
	return out, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:              m.ID,
		GroupID:         m.GroupID,
		Name:            m.Name,
		Unit:            m.Unit,
		PackageSize:     m.PackageSize,
		StockQuantity:   m.StockQuantity,
		MinStock:        m.MinStock,
		IsRetailProduct: m.IsRetailProduct,
		CreatedAt:       m.CreatedAt,
	}
}

func toMovementResponse(m *entity.MaterialMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		MaterialID:    m.MaterialID,
		TransactionID: m.TransactionID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Note:          m.Note,
		ClientID:      m.ClientID,
		VisitID:       m.VisitID,
		TotalPrice:    m.TotalPrice,
		CreatedAt:     m.CreatedAt,
	}
}
