package repository

import "github.com/supervisor-bit/HairBook-New/internal/domain/entity"

// UserRepository define el puerto del (único) operador.
type UserRepository interface {
	Create(user *entity.User) error
	// First devuelve el primer usuario o nil si no hay setup hecho.
	First() (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
}

// SettingsRepository define el puerto de los datos del salón (singleton).
type SettingsRepository interface {
	Get() (*entity.SalonSettings, error) // nil si aún no existe
	Save(settings *entity.SalonSettings) error
}
