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

func newCoordinator(store *fakeStore) *ledger.Coordinator {
	return ledger.NewCoordinator(&fakeTxRunner{store: store}, &fakeOrderRepo{store}, &fakeVisitRepo{store})
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

// Venta multi-línea con cliente: descuenta cada saldo, todas las líneas
// comparten TransactionID, nota y precio viajan solo en la primera, y se crea
// un producto a casa por línea con PurchaseID = TransactionID.
func TestRecordSale_MultiLinea(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Šampon", entity.UnitMilliliter, 300, 10)
	store.seedMaterial("m2", "Maska", entity.UnitMilliliter, 250, 5)
	c := newCoordinator(store)

	price := dec(850)
	result, err := c.RecordSale(context.Background(), ledger.SaleInput{
		Items: []ledger.BatchItem{
			{MaterialID: "m1", Quantity: dec(3)},
			{MaterialID: "m2", Quantity: dec(2)},
		},
		ClientID:   "client-1",
		TotalPrice: &price,
		Note:       "prodej na pokladně",
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 2)
	require.Len(t, result.HomeProducts, 2)

	assert.True(t, store.stock("m1").Equal(dec(7)), "saldo de m1 debe quedar en 7")
	assert.True(t, store.stock("m2").Equal(dec(3)), "saldo de m2 debe quedar en 3")

	first, second := result.Movements[0], result.Movements[1]
	assert.Equal(t, entity.MovementSale, first.Type)
	assert.True(t, first.Quantity.Equal(dec(-3)), "la línea del libro lleva signo negativo")
	assert.Equal(t, first.TransactionID, second.TransactionID,
		"todas las líneas del lote comparten TransactionID")

	assert.Equal(t, "prodej na pokladně", first.Note, "la nota viaja en la primera línea")
	assert.Empty(t, second.Note, "las demás líneas van sin nota")
	require.NotNil(t, first.TotalPrice)
	assert.True(t, first.TotalPrice.Equal(price))
	assert.Nil(t, second.TotalPrice, "el precio total solo viaja en la primera línea")

	hp := result.HomeProducts[0]
	assert.Equal(t, first.TransactionID, hp.PurchaseID,
		"el producto a casa comparte el ID de transacción de la venta")
	assert.Equal(t, "Šampon", hp.Name, "el nombre queda fotografiado en la línea")
	assert.Equal(t, "client-1", hp.ClientID)
}

// Saldo insuficiente en cualquiera de las líneas: el lote entero falla y no
// queda ninguna mutación parcial.
func TestRecordSale_SinSaldo_NoMutaNada(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Šampon", entity.UnitMilliliter, 300, 10)
	store.seedMaterial("m2", "Maska", entity.UnitMilliliter, 250, 1)
	c := newCoordinator(store)

	_, err := c.RecordSale(context.Background(), ledger.SaleInput{
		Items: []ledger.BatchItem{
			{MaterialID: "m1", Quantity: dec(3)},
			{MaterialID: "m2", Quantity: dec(2)}, // solo hay 1
		},
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient, "debe reportar qué material no alcanza")
	assert.Equal(t, "m2", insufficient.MaterialID)
	assert.Equal(t, "Maska", insufficient.MaterialName)
	assert.True(t, insufficient.Requested.Equal(dec(2)))
	assert.True(t, insufficient.Available.Equal(dec(1)))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, store.stock("m1").Equal(dec(10)), "el saldo de m1 no debe cambiar")
	assert.True(t, store.stock("m2").Equal(dec(1)), "el saldo de m2 no debe cambiar")
	assert.Empty(t, store.movements, "no debe quedar ninguna línea en el libro")
	assert.Empty(t, store.homeProducts)
}

// Venta anónima: movimientos sí, productos a casa no.
func TestRecordSale_SinCliente_SinHomeProducts(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Šampon", entity.UnitMilliliter, 300, 10)
	c := newCoordinator(store)

	result, err := c.RecordSale(context.Background(), ledger.SaleInput{
		Items: []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(1)}},
	})
	require.NoError(t, err)
	assert.Len(t, result.Movements, 1)
	assert.Empty(t, result.HomeProducts, "sin cliente no hay historial de compras")
	assert.Nil(t, result.Movements[0].ClientID)
}

func TestRecordSale_EntradaInvalida(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Šampon", entity.UnitMilliliter, 300, 10)
	c := newCoordinator(store)
	ctx := context.Background()

	_, err := c.RecordSale(ctx, ledger.SaleInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote vacío es entrada inválida")

	_, err = c.RecordSale(ctx, ledger.SaleInput{
		Items: []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(0)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero es entrada inválida")

	negative := dec(-5)
	_, err = c.RecordSale(ctx, ledger.SaleInput{
		Items:      []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(1)}},
		TotalPrice: &negative,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo es entrada inválida")

	_, err = c.RecordSale(ctx, ledger.SaleInput{
		Items: []ledger.BatchItem{{MaterialID: "no-existe", Quantity: dec(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un lote puede repetir material: el guard se evalúa sobre la cantidad
// acumulada de las líneas y los débitos se suman en vez de pisarse.
func TestRecordSale_LineasDuplicadas(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Šampon", entity.UnitPiece, 1, 10)
	c := newCoordinator(store)
	ctx := context.Background()

	// 6 + 6 sobre saldo 10: el total de 12 no cabe aunque cada línea sí.
	_, err := c.RecordSale(ctx, ledger.SaleInput{
		Items: []ledger.BatchItem{
			{MaterialID: "m1", Quantity: dec(6)},
			{MaterialID: "m1", Quantity: dec(6)},
		},
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Requested.Equal(dec(12)), "lo pedido es la suma de las líneas")
	assert.True(t, insufficient.Available.Equal(dec(10)))
	assert.True(t, store.stock("m1").Equal(dec(10)), "el lote rechazado no muta nada")
	assert.Empty(t, store.movements)

	// 4 + 4 sí cabe: un movimiento por línea y saldo 2.
	result, err := c.RecordSale(ctx, ledger.SaleInput{
		Items: []ledger.BatchItem{
			{MaterialID: "m1", Quantity: dec(4)},
			{MaterialID: "m1", Quantity: dec(4)},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Movements, 2)
	assert.True(t, store.stock("m1").Equal(dec(2)), "los débitos de líneas repetidas se acumulan")

	movements := &fakeMovementRepo{store}
	sum, err := movements.SumByMaterial("m1")
	require.NoError(t, err)
	assert.True(t, dec(10).Add(sum).Equal(store.stock("m1")),
		"saldo_inicial + suma del libro debe igualar el saldo actual")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordUsage
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordUsage_DescuentaConGuard(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Barva", entity.UnitGram, 60, 4)
	c := newCoordinator(store)

	movs, err := c.RecordUsage(context.Background(), ledger.UsageInput{
		Items:    []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(1)}},
		ClientID: "client-1",
		Note:     "spotřeba",
	})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementUsage, movs[0].Type)
	assert.True(t, store.stock("m1").Equal(dec(3)))

	// El consumo también bloquea el sobregiro, igual que la venta.
	_, err = c.RecordUsage(context.Background(), ledger.UsageInput{
		Items: []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(99)}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.stock("m1").Equal(dec(3)), "el intento fallido no debe tocar el saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordManualMovement
// ──────────────────────────────────────────────────────────────────────────────

// Una compra suelta suma; una salida manual resta sin pre-chequeo y puede
// dejar el saldo negativo (espejo de la pantalla de detalle).
func TestRecordManualMovement_SignoPorCausa(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Oxidant", entity.UnitMilliliter, 1000, 2)
	c := newCoordinator(store)
	ctx := context.Background()

	mov, err := c.RecordManualMovement(ctx, "m1", ledger.ManualMovementInput{
		Type:     entity.MovementPurchase,
		Quantity: dec(3),
	})
	require.NoError(t, err)
	assert.True(t, mov.Quantity.Equal(dec(3)), "PURCHASE suma: cantidad positiva")
	assert.True(t, store.stock("m1").Equal(dec(5)))

	mov, err = c.RecordManualMovement(ctx, "m1", ledger.ManualMovementInput{
		Type:     entity.MovementUsage,
		Quantity: dec(7),
	})
	require.NoError(t, err)
	assert.True(t, mov.Quantity.Equal(dec(-7)), "USAGE resta: cantidad negativa")
	assert.True(t, store.stock("m1").Equal(dec(-2)),
		"el movimiento manual no tiene guard: el saldo puede quedar negativo")
}

func TestRecordManualMovement_Rechazos(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Oxidant", entity.UnitMilliliter, 1000, 2)
	c := newCoordinator(store)
	ctx := context.Background()

	_, err := c.RecordManualMovement(ctx, "m1", ledger.ManualMovementInput{
		Type:     entity.MovementVisit,
		Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"VISIT solo lo crea el cierre de visita, no un ajuste manual")

	_, err = c.RecordManualMovement(ctx, "m1", ledger.ManualMovementInput{
		Type:     "AJUSTE",
		Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.RecordManualMovement(ctx, "no-existe", ledger.ManualMovementInput{
		Type:     entity.MovementPurchase,
		Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante del libro
// ──────────────────────────────────────────────────────────────────────────────

// Tras una secuencia de operaciones mixtas, el saldo de cada material es
// exactamente saldo_inicial + Σ movimientos de su libro.
func TestLedger_SaldoEsProyeccionDelLibro(t *testing.T) {
	store := newFakeStore()
	store.seedMaterial("m1", "Šampon", entity.UnitMilliliter, 300, 10)
	c := newCoordinator(store)
	ctx := context.Background()

	_, err := c.RecordManualMovement(ctx, "m1", ledger.ManualMovementInput{
		Type: entity.MovementPurchase, Quantity: dec(4),
	})
	require.NoError(t, err)
	_, err = c.RecordSale(ctx, ledger.SaleInput{
		Items: []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(2.5)}},
	})
	require.NoError(t, err)
	_, err = c.RecordUsage(ctx, ledger.UsageInput{
		Items: []ledger.BatchItem{{MaterialID: "m1", Quantity: dec(1)}},
	})
	require.NoError(t, err)

	movements := &fakeMovementRepo{store}
	sum, err := movements.SumByMaterial("m1")
	require.NoError(t, err)
	assert.True(t, dec(10).Add(sum).Equal(store.stock("m1")),
		"saldo_inicial + suma del libro debe igualar el saldo actual")
	assert.True(t, store.stock("m1").Equal(dec(10.5)))
}
