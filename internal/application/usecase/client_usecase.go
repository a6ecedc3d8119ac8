package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// ClientUseCase clientes, grupos, notas e historial de compras a casa.
type ClientUseCase struct {
	clients      repository.ClientRepository
	groups       repository.ClientGroupRepository
	homeProducts repository.HomeProductRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	clients repository.ClientRepository,
	groups repository.ClientGroupRepository,
	homeProducts repository.HomeProductRepository,
) *ClientUseCase {
	return &ClientUseCase{clients: clients, groups: groups, homeProducts: homeProducts}
}

// Create da de alta un cliente; sin avatar explícito se usan las iniciales.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = strings.ToUpper(firstRune(in.FirstName) + firstRune(in.LastName))
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Avatar:    avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.GroupID != "" {
		client.GroupID = &in.GroupID
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID ficha del cliente o ErrNotFound.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List clientes por apellido/nombre en orden checo. groupID "all" = todos.
func (uc *ClientUseCase) List(groupID string) ([]dto.ClientResponse, error) {
	if groupID == "all" {
		groupID = ""
	}
	list, err := uc.clients.List(groupID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if c := czechCollator.CompareString(list[i].LastName, list[j].LastName); c != 0 {
			return c < 0
		}
		return czechCollator.CompareString(list[i].FirstName, list[j].FirstName) < 0
	})
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update edita la ficha del cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Avatar != nil {
		client.Avatar = *in.Avatar
	}
	if in.GroupID != nil {
		if *in.GroupID == "" {
			client.GroupID = nil
		} else {
			client.GroupID = in.GroupID
		}
	}
	client.UpdatedAt = time.Now()
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete borra el cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clients.Delete(id)
}

// CreateGroup crea un grupo de clientes.
func (uc *ClientUseCase) CreateGroup(name string) (*dto.ClientGroupResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	group := &entity.ClientGroup{ID: uuid.New().String(), Name: name}
	if err := uc.groups.Create(group); err != nil {
		return nil, err
	}
	return &dto.ClientGroupResponse{ID: group.ID, Name: group.Name}, nil
}

// ListGroups grupos de clientes.
func (uc *ClientUseCase) ListGroups() ([]dto.ClientGroupResponse, error) {
	list, err := uc.groups.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientGroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.ClientGroupResponse{ID: g.ID, Name: g.Name, IsSystem: g.IsSystem})
	}
	return out, nil
}

// RenameGroup renombra un grupo.
func (uc *ClientUseCase) RenameGroup(id, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	group, err := uc.groups.GetByID(id)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	return uc.groups.Rename(id, name)
}

// DeleteGroup borra un grupo: los de sistema nunca, los demás solo vacíos.
func (uc *ClientUseCase) DeleteGroup(id string) error {
	group, err := uc.groups.GetByID(id)
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrNotFound
	}
	if group.IsSystem {
		return domain.ErrConflict
	}
	count, err := uc.groups.CountClients(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.groups.Delete(id)
}

// AddNote añade una nota al cliente.
func (uc *ClientUseCase) AddNote(clientID string, in dto.ClientNoteRequest) (*dto.ClientNoteResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.GetByID(clientID); err != nil {
		return nil, err
	}
	note := &entity.ClientNote{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Text:      in.Text,
		CreatedAt: time.Now(),
	}
	if err := uc.clients.AddNote(note); err != nil {
		return nil, err
	}
	return &dto.ClientNoteResponse{ID: note.ID, Text: note.Text, CreatedAt: note.CreatedAt}, nil
}

// ListNotes notas del cliente, recientes primero.
func (uc *ClientUseCase) ListNotes(clientID string) ([]dto.ClientNoteResponse, error) {
	if _, err := uc.GetByID(clientID); err != nil {
		return nil, err
	}
	list, err := uc.clients.ListNotes(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientNoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.ClientNoteResponse{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt})
	}
	return out, nil
}

// DeleteNote borra una nota.
func (uc *ClientUseCase) DeleteNote(noteID string) error {
	return uc.clients.DeleteNote(noteID)
}

// ListHomeProducts historial de compras a casa del cliente.
func (uc *ClientUseCase) ListHomeProducts(clientID string) ([]dto.HomeProductResponse, error) {
	if _, err := uc.GetByID(clientID); err != nil {
		return nil, err
	}
	list, err := uc.homeProducts.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HomeProductResponse, 0, len(list))
	for _, hp := range list {
		out = append(out, toHomeProductResponse(hp))
	}
	return out, nil
}

// DeleteHomeProduct borra la compra completa a la que pertenece la línea
// (todas las líneas con el mismo purchaseId). No revierte stock.
func (uc *ClientUseCase) DeleteHomeProduct(productID string) error {
	product, err := uc.homeProducts.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.PurchaseID != "" {
		return uc.homeProducts.DeleteByPurchase(product.PurchaseID)
	}
	return uc.homeProducts.Delete(productID)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		GroupID:   c.GroupID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Avatar:    c.Avatar,
		CreatedAt: c.CreatedAt,
	}
}

func toHomeProductResponse(hp *entity.HomeProduct) dto.HomeProductResponse {
	return dto.HomeProductResponse{
		ID:          hp.ID,
		ClientID:    hp.ClientID,
		MaterialID:  hp.MaterialID,
		PurchaseID:  hp.PurchaseID,
		Name:        hp.Name,
		Quantity:    hp.Quantity,
		Unit:        hp.Unit,
		PackageSize: hp.PackageSize,
		TotalPrice:  hp.TotalPrice,
		Note:        hp.Note,
		CreatedAt:   hp.CreatedAt,
	}
}
