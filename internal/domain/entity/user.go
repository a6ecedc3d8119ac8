package entity

import "time"

// User es el operador del salón. El sistema es mono-usuario: el setup crea el
// primero y único.
type User struct {
	ID           string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SalonSettings son los datos del salón (singleton, get-or-create).
type SalonSettings struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	ICO       string // identificační číslo
	DIC       string // daňové identifikační číslo
	UpdatedAt time.Time
}
