package repository

import "github.com/supervisor-bit/HairBook-New/internal/domain/entity"

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(groupID string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error

	AddNote(note *entity.ClientNote) error
	ListNotes(clientID string) ([]*entity.ClientNote, error)
	DeleteNote(noteID string) error
}

// ClientGroupRepository define el puerto para los grupos de clientes.
type ClientGroupRepository interface {
	Create(group *entity.ClientGroup) error
	GetByID(id string) (*entity.ClientGroup, error)
	List() ([]*entity.ClientGroup, error)
	Rename(id, name string) error
	CountClients(id string) (int, error)
	Delete(id string) error
}
