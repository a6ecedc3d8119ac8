package entity

import "time"

// Client es un cliente del salón.
type Client struct {
	ID        string
	GroupID   *string
	FirstName string
	LastName  string
	Phone     string
	Avatar    string // iniciales por defecto
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientGroup agrupa clientes (VIP, nuevos...). Los grupos de sistema no se
// pueden borrar; los demás solo si no tienen miembros.
type ClientGroup struct {
	ID       string
	Name     string
	IsSystem bool
}

// ClientNote es una nota libre sobre un cliente.
type ClientNote struct {
	ID        string
	ClientID  string
	Text      string
	CreatedAt time.Time
}
