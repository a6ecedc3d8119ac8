package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador del operador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste el operador.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// First devuelve el primer usuario o nil si no hay setup hecho.
func (r *UserRepo) First() (*entity.User, error) {
	query := `SELECT id, password_hash, created_at, updated_at FROM users ORDER BY created_at LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query).Scan(
		&u.ID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first user: %w", err)
	}
	return &u, nil
}

// UpdatePassword sustituye el hash de la contraseña.
func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de los datos del salón.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la fila única o nil si aún no existe.
func (r *SettingsRepo) Get() (*entity.SalonSettings, error) {
	query := `SELECT id, name, address, phone, email, ico, dic, updated_at FROM salon_settings LIMIT 1`
	var s entity.SalonSettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.ICO, &s.DIC, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save inserta o actualiza la fila única.
func (r *SettingsRepo) Save(settings *entity.SalonSettings) error {
	query := `
		INSERT INTO salon_settings (id, name, address, phone, email, ico, dic, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
			email = EXCLUDED.email, ico = EXCLUDED.ico, dic = EXCLUDED.dic, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.Name, settings.Address, settings.Phone,
		settings.Email, settings.ICO, settings.DIC, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
