package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// SettingsUseCase datos del salón: fila única con get-or-create.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get devuelve los datos del salón; si no existen todavía crea la fila vacía.
func (uc *SettingsUseCase) Get() (*dto.SalonSettingsResponse, error) {
	settings, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.SalonSettings{ID: uuid.New().String(), UpdatedAt: time.Now()}
		if err := uc.settings.Save(settings); err != nil {
			return nil, err
		}
	}
	return toSettingsResponse(settings), nil
}

// Save sobreescribe los datos del salón.
func (uc *SettingsUseCase) Save(in dto.SalonSettingsRequest) (*dto.SalonSettingsResponse, error) {
	settings, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.SalonSettings{ID: uuid.New().String()}
	}
	settings.Name = in.Name
	settings.Address = in.Address
	settings.Phone = in.Phone
	settings.Email = in.Email
	settings.ICO = in.ICO
	settings.DIC = in.DIC
	settings.UpdatedAt = time.Now()
	if err := uc.settings.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.SalonSettings) *dto.SalonSettingsResponse {
	return &dto.SalonSettingsResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Email:   s.Email,
		ICO:     s.ICO,
		DIC:     s.DIC,
	}
}
