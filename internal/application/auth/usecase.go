package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
	"github.com/supervisor-bit/HairBook-New/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación mono-usuario: setup inicial, login por contraseña
// y cambio de contraseña.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Setup crea el operador. Solo funciona una vez: si ya existe un usuario
// devuelve ErrConflict.
func (uc *AuthUseCase) Setup(in dto.SetupRequest) error {
	if len(in.Password) < 4 {
		return domain.ErrInvalidInput
	}
	existing, err := uc.users.First()
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.users.Create(&entity.User{
		ID:           uuid.New().String(),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login verifica la contraseña contra el único operador y emite un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.First()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// ChangePassword verifica la contraseña actual antes de sustituirla.
func (uc *AuthUseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 4 {
		return domain.ErrInvalidInput
	}
	user, err := uc.users.First()
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(user.ID, string(hash))
}
