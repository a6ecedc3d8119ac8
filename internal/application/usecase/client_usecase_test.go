package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

func newClientUC() (*usecase.ClientUseCase, *memClientRepo, *memClientGroupRepo, *memHomeProductRepo) {
	clients := newMemClientRepo()
	groups := newMemClientGroupRepo()
	homeProducts := &memHomeProductRepo{}
	uc := usecase.NewClientUseCase(clients, groups, homeProducts)
	return uc, clients, groups, homeProducts
}

// Sin avatar explícito se usan las iniciales, también con diacríticos.
func TestClientCreate_AvatarIniciales(t *testing.T) {
	uc, _, _, _ := newClientUC()

	created, err := uc.Create(dto.CreateClientRequest{FirstName: "Šárka", LastName: "Nováková"})
	require.NoError(t, err)
	assert.Equal(t, "ŠN", created.Avatar, "las iniciales respetan los diacríticos checos")

	created, err = uc.Create(dto.CreateClientRequest{
		FirstName: "Jana",
		LastName:  "Malá",
		Avatar:    "🌸",
	})
	require.NoError(t, err)
	assert.Equal(t, "🌸", created.Avatar, "el avatar explícito no se sobreescribe")

	_, err = uc.Create(dto.CreateClientRequest{FirstName: "Jana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "apellido obligatorio")
}

// Orden checo por apellido y después nombre.
func TestClientList_OrdenCheco(t *testing.T) {
	uc, _, _, _ := newClientUC()

	for _, c := range []struct{ first, last string }{
		{"Petra", "Tichá"},
		{"Eva", "Šimková"},
		{"Anna", "Šimková"},
	} {
		_, err := uc.Create(dto.CreateClientRequest{FirstName: c.first, LastName: c.last})
		require.NoError(t, err)
	}

	list, err := uc.List("all")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Anna", list[0].FirstName, "mismo apellido: desempata el nombre")
	assert.Equal(t, "Eva", list[1].FirstName)
	assert.Equal(t, "Tichá", list[2].LastName, "Š ordena antes de T en checo")
}

// Los grupos de sistema nunca se borran; los demás solo si están vacíos.
func TestClientDeleteGroup_Guards(t *testing.T) {
	uc, _, groups, _ := newClientUC()

	require.NoError(t, groups.Create(&entity.ClientGroup{ID: "sys", Name: "Moji klienti", IsSystem: true}))
	require.NoError(t, groups.Create(&entity.ClientGroup{ID: "vip", Name: "VIP"}))
	require.NoError(t, groups.Create(&entity.ClientGroup{ID: "empty", Name: "Nový"}))
	groups.members["vip"] = 2

	assert.ErrorIs(t, uc.DeleteGroup("sys"), domain.ErrConflict, "grupo de sistema es intocable")
	assert.ErrorIs(t, uc.DeleteGroup("vip"), domain.ErrConflict, "grupo con miembros no se borra")
	assert.NoError(t, uc.DeleteGroup("empty"))
	assert.ErrorIs(t, uc.DeleteGroup("no-existe"), domain.ErrNotFound)
}

// Borrar una línea de compra elimina la compra completa (todas las líneas con
// el mismo purchaseId) y no toca el stock.
func TestClientDeleteHomeProduct_BorraCompraCompleta(t *testing.T) {
	uc, clients, _, homeProducts := newClientUC()

	require.NoError(t, clients.Create(&entity.Client{ID: "c1", FirstName: "Eva", LastName: "Malá"}))
	seed := func(id, purchaseID string) {
		require.NoError(t, homeProducts.Create(&entity.HomeProduct{
			ID:         id,
			ClientID:   "c1",
			PurchaseID: purchaseID,
			Name:       "Šampon",
			Quantity:   decimal.NewFromInt(1),
		}))
	}
	seed("hp1", "tx-1")
	seed("hp2", "tx-1")
	seed("hp3", "tx-2")

	require.NoError(t, uc.DeleteHomeProduct("hp1"))

	rest, err := uc.ListHomeProducts("c1")
	require.NoError(t, err)
	require.Len(t, rest, 1, "las dos líneas de tx-1 deben desaparecer juntas")
	assert.Equal(t, "hp3", rest[0].ID)

	assert.ErrorIs(t, uc.DeleteHomeProduct("hp1"), domain.ErrNotFound)
}

// GroupID vacío en el update desasigna el grupo.
func TestClientUpdate_DesasignaGrupo(t *testing.T) {
	uc, clients, _, _ := newClientUC()

	created, err := uc.Create(dto.CreateClientRequest{
		FirstName: "Eva",
		LastName:  "Malá",
		GroupID:   "vip",
	})
	require.NoError(t, err)
	require.NotNil(t, created.GroupID)

	empty := ""
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{GroupID: &empty})
	require.NoError(t, err)

	c, _ := clients.GetByID(created.ID)
	assert.Nil(t, c.GroupID, "groupId vacío debe dejar al cliente sin grupo")
}
