package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

func seedOrderedOrder(store *fakeStore) *entity.Order {
	order := &entity.Order{
		ID:     "order-1",
		Status: entity.OrderStatusOrdered,
		Items: []entity.OrderItem{
			{ID: "i1", OrderID: "order-1", MaterialID: "m1", Quantity: dec(5)},
			{ID: "i2", OrderID: "order-1", MaterialID: "m2", Quantity: dec(3)},
		},
	}
	store.orders[order.ID] = order
	return order
}

// Entrega sin ajustes: cada línea acredita su cantidad, los movimientos son
// DELIVERY positivos con la nota checa histórica y la orden queda delivered.
func TestRecordDelivery_AcreditaYMarcaEntregada(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 1)
	store.seedMaterial("m2", "Oxidant", entity.UnitMilliliter, 1000, 0)
	seedOrderedOrder(store)
	c := newCoordinator(store)

	result, err := c.RecordDelivery(context.Background(), "order-1", ledger.DeliveryInput{})
	require.NoError(t, err)
	require.Len(t, result.Movements, 2)

	assert.True(t, store.stock("m1").Equal(dec(6)))
	assert.True(t, store.stock("m2").Equal(dec(3)))

	for _, mov := range result.Movements {
		assert.Equal(t, entity.MovementDelivery, mov.Type)
		assert.True(t, mov.Quantity.Sign() > 0, "la entrega acredita: cantidad positiva")
		assert.Equal(t, "Objednávka doručena", mov.Note)
		assert.Equal(t, result.Movements[0].TransactionID, mov.TransactionID)
	}

	assert.Equal(t, entity.OrderStatusDelivered, result.Order.Status)
	require.NotNil(t, result.Order.DeliveredAt)
	assert.Equal(t, entity.OrderStatusDelivered, store.orders["order-1"].Status,
		"el estado debe quedar persistido")
}

// El albarán manda: cantidades corregidas por línea, línea en cero omitida y
// material extra que no estaba en la orden.
func TestRecordDelivery_OverridesYExtras(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 0)
	store.seedMaterial("m2", "Oxidant", entity.UnitMilliliter, 1000, 0)
	store.seedMaterial("m3", "Maska", entity.UnitMilliliter, 250, 0)
	seedOrderedOrder(store)
	c := newCoordinator(store)

	result, err := c.RecordDelivery(context.Background(), "order-1", ledger.DeliveryInput{
		Overrides: map[string]decimal.Decimal{
			"m1": dec(4), // llegaron 4 en vez de 5
			"m2": dec(0), // línea no entregada
		},
		Extra: []ledger.BatchItem{{MaterialID: "m3", Quantity: dec(2)}},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 2, "la línea en cero no genera movimiento")

	assert.True(t, store.stock("m1").Equal(dec(4)), "vale la cantidad del albarán")
	assert.True(t, store.stock("m2").Equal(dec(0)), "la línea omitida no acredita")
	assert.True(t, store.stock("m3").Equal(dec(2)), "el extra acredita aunque no estuviera en la orden")
}

// Solo la transición ordered -> delivered está permitida.
func TestRecordDelivery_SoloDesdeOrdered(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 0)
	c := newCoordinator(store)
	ctx := context.Background()

	store.orders["pend"] = &entity.Order{ID: "pend", Status: entity.OrderStatusPending}
	_, err := c.RecordDelivery(ctx, "pend", ledger.DeliveryInput{})
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden pending no se puede entregar")

	store.orders["done"] = &entity.Order{ID: "done", Status: entity.OrderStatusDelivered}
	_, err = c.RecordDelivery(ctx, "done", ledger.DeliveryInput{})
	assert.ErrorIs(t, err, domain.ErrConflict, "una orden ya entregada no se entrega dos veces")

	_, err = c.RecordDelivery(ctx, "no-existe", ledger.DeliveryInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos entregas concurrentes: ambas leen la orden en ordered, pero la segunda
// entra a su transacción con la orden ya delivered. La transición condicional
// falla y la transacción completa se revierte sin acreditar stock.
func TestRecordDelivery_CarreraDeEntregas(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 1)
	store.seedMaterial("m2", "Oxidant", entity.UnitMilliliter, 1000, 0)
	seedOrderedOrder(store)
	runner := &colanteTxRunner{
		fakeTxRunner: &fakeTxRunner{store: store},
		cuela: func(s *fakeStore) {
			s.orders["order-1"].Status = entity.OrderStatusDelivered
		},
	}
	c := ledger.NewCoordinator(runner, &fakeOrderRepo{store}, &fakeVisitRepo{store})

	_, err := c.RecordDelivery(context.Background(), "order-1", ledger.DeliveryInput{})
	assert.ErrorIs(t, err, domain.ErrConflict, "la entrega que pierde la carrera es conflicto")
	assert.True(t, store.stock("m1").Equal(dec(1)), "el perdedor no debe acreditar nada")
	assert.True(t, store.stock("m2").Equal(dec(0)))
	assert.Empty(t, store.movements)
}

func TestRecordDelivery_AjustesInvalidos(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 0)
	seedOrderedOrder(store)
	c := newCoordinator(store)
	ctx := context.Background()

	_, err := c.RecordDelivery(ctx, "order-1", ledger.DeliveryInput{
		Overrides: map[string]decimal.Decimal{"m1": dec(-1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa en el albarán")

	_, err = c.RecordDelivery(ctx, "order-1", ledger.DeliveryInput{
		Extra: []ledger.BatchItem{{MaterialID: "", Quantity: dec(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "extra sin material")
}
