package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

func seedSavedVisit(store *fakeStore, materials []entity.VisitMaterial) *entity.Visit {
	visit := &entity.Visit{
		ID:       "visit-1",
		ClientID: "client-1",
		Status:   entity.VisitStatusSaved,
		Services: []entity.VisitService{
			{ID: "vs1", VisitID: "visit-1", ServiceID: "svc-1", Order: 1, Materials: materials},
		},
	}
	store.visits[visit.ID] = visit
	return visit
}

// El cierre convierte cada línea a paquetes según su unidad: 30 g de un
// paquete de 60 g son 0.5 paquetes; ks ya está en paquetes.
func TestCloseVisit_ConvierteAPaquetes(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 2)
	store.seedMaterial("m2", "Rukavice", entity.UnitPiece, 1, 10)
	seedSavedVisit(store, []entity.VisitMaterial{
		{ID: "vm1", VisitServiceID: "vs1", MaterialID: "m1", Quantity: dec(30), Unit: entity.UnitGram},
		{ID: "vm2", VisitServiceID: "vs1", MaterialID: "m2", Quantity: dec(2), Unit: entity.UnitPiece},
	})
	c := newCoordinator(store)

	price := dec(1200)
	visit, err := c.CloseVisit(context.Background(), "visit-1", ledger.CloseVisitInput{
		TotalPrice: &price,
		Note:       "trvalá + střih",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.VisitStatusClosed, visit.Status)
	require.NotNil(t, visit.ClosedAt)
	assert.True(t, store.stock("m1").Equal(dec(1.5)), "30 g de paquete de 60 g = 0.5 paquetes")
	assert.True(t, store.stock("m2").Equal(dec(8)), "ks se descuenta tal cual")

	require.Len(t, store.movements, 2)
	for _, mov := range store.movements {
		assert.Equal(t, entity.MovementVisit, mov.Type)
		assert.True(t, mov.Quantity.Sign() < 0, "el consumo de visita resta")
		assert.Equal(t, "Použito v návštěvě", mov.Note)
		require.NotNil(t, mov.VisitID)
		assert.Equal(t, "visit-1", *mov.VisitID)
	}
	assert.Equal(t, store.movements[0].TransactionID, store.movements[1].TransactionID)

	persisted := store.visits["visit-1"]
	assert.Equal(t, entity.VisitStatusClosed, persisted.Status)
	require.NotNil(t, persisted.TotalPrice)
	assert.True(t, persisted.TotalPrice.Equal(price))
}

// El débito de visita no tiene guard: el saldo puede quedar negativo.
func TestCloseVisit_PermiteSobregiro(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 0.2)
	seedSavedVisit(store, []entity.VisitMaterial{
		{ID: "vm1", VisitServiceID: "vs1", MaterialID: "m1", Quantity: dec(30), Unit: entity.UnitGram},
	})
	c := newCoordinator(store)

	_, err := c.CloseVisit(context.Background(), "visit-1", ledger.CloseVisitInput{})
	require.NoError(t, err, "cerrar sin saldo suficiente está permitido")
	assert.True(t, store.stock("m1").Equal(dec(-0.3)),
		"el saldo queda negativo en vez de bloquear el cierre")
}

// Una visita sin líneas de material cierra sin tocar el libro.
func TestCloseVisit_SinMateriales(t *testing.T) {
	store := newFakeStore()
	seedSavedVisit(store, nil)
	c := newCoordinator(store)

	visit, err := c.CloseVisit(context.Background(), "visit-1", ledger.CloseVisitInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusClosed, visit.Status)
	assert.Empty(t, store.movements)
}

// closed es terminal: el segundo cierre es conflicto y no duplica consumo.
func TestCloseVisit_YaCerrada(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 2)
	seedSavedVisit(store, []entity.VisitMaterial{
		{ID: "vm1", VisitServiceID: "vs1", MaterialID: "m1", Quantity: dec(30), Unit: entity.UnitGram},
	})
	c := newCoordinator(store)
	ctx := context.Background()

	_, err := c.CloseVisit(ctx, "visit-1", ledger.CloseVisitInput{})
	require.NoError(t, err)
	stockAfterFirst := store.stock("m1")
	movementsAfterFirst := len(store.movements)

	_, err = c.CloseVisit(ctx, "visit-1", ledger.CloseVisitInput{})
	assert.ErrorIs(t, err, domain.ErrConflict, "una visita cerrada no se vuelve a cerrar")
	assert.True(t, store.stock("m1").Equal(stockAfterFirst), "el segundo intento no descuenta")
	assert.Len(t, store.movements, movementsAfterFirst)
}

// Dos cierres concurrentes: el segundo lee la visita aún en saved, pero otro
// commit la cierra antes de que abra su transacción. La transición condicional
// dentro de la transacción lo detecta y no aplica ningún débito.
func TestCloseVisit_CarreraDeCierres(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 2)
	seedSavedVisit(store, []entity.VisitMaterial{
		{ID: "vm1", VisitServiceID: "vs1", MaterialID: "m1", Quantity: dec(30), Unit: entity.UnitGram},
	})
	runner := &colanteTxRunner{
		fakeTxRunner: &fakeTxRunner{store: store},
		cuela: func(s *fakeStore) {
			s.visits["visit-1"].Status = entity.VisitStatusClosed
		},
	}
	c := ledger.NewCoordinator(runner, &fakeOrderRepo{store}, &fakeVisitRepo{store})

	_, err := c.CloseVisit(context.Background(), "visit-1", ledger.CloseVisitInput{})
	assert.ErrorIs(t, err, domain.ErrConflict, "el cierre que pierde la carrera es conflicto")
	assert.True(t, store.stock("m1").Equal(dec(2)), "el perdedor no debe descontar nada")
	assert.Empty(t, store.movements)
}

func TestCloseVisit_Inexistente(t *testing.T) {
	store := newFakeStore()
	c := newCoordinator(store)

	_, err := c.CloseVisit(context.Background(), "no-existe", ledger.CloseVisitInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si una línea referencia un material borrado, el cierre falla entero y la
// visita sigue abierta.
func TestCloseVisit_MaterialInexistente_NoCierra(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 2)
	seedSavedVisit(store, []entity.VisitMaterial{
		{ID: "vm1", VisitServiceID: "vs1", MaterialID: "m1", Quantity: dec(30), Unit: entity.UnitGram},
		{ID: "vm2", VisitServiceID: "vs1", MaterialID: "fantasma", Quantity: dec(1), Unit: entity.UnitPiece},
	})
	c := newCoordinator(store)

	_, err := c.CloseVisit(context.Background(), "visit-1", ledger.CloseVisitInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.VisitStatusSaved, store.visits["visit-1"].Status,
		"la visita debe seguir abierta")
	assert.True(t, store.stock("m1").Equal(dec(2)), "no debe quedar débito parcial")
}
