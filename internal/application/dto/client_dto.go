package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	GroupID   string `json:"groupId"`
	Avatar    string `json:"avatar"`
}

// UpdateClientRequest edición de cliente.
type UpdateClientRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	GroupID   *string `json:"groupId"`
	Avatar    *string `json:"avatar"`
}

// ClientResponse ficha de cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	GroupID   *string   `json:"groupId,omitempty"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientGroupResponse grupo de clientes.
type ClientGroupResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsSystem bool   `json:"isSystem"`
}

// ClientNoteRequest nota libre sobre un cliente.
type ClientNoteRequest struct {
	Text string `json:"text"`
}

// ClientNoteResponse nota con su fecha.
type ClientNoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// NameRequest alta/renombrado de grupos y servicios.
type NameRequest struct {
	Name string `json:"name"`
}
