// Package ledger implementa el coordinador de movimientos de material: la
// única pieza que muta saldos. Cada operación es un lote atómico que actualiza
// el stock y añade una entrada al libro por línea, manteniendo el invariante
// saldo_inicial + Σ movimientos == saldo_actual.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// Notas históricas en checo; la UI existente las muestra tal cual.
const (
	noteOrderDelivered = "Objednávka doručena"
	noteVisitConsumed  = "Použito v návštěvě"
)

// Coordinator orquesta los cinco lotes de movimientos (venta, consumo,
// movimiento manual, entrega de orden, cierre de visita) dentro de una
// transacción con bloqueo de fila por material.
type Coordinator struct {
	txRunner TxRunner
	orders   repository.OrderRepository
	visits   repository.VisitRepository
}

// NewCoordinator construye el coordinador.
func NewCoordinator(txRunner TxRunner, orders repository.OrderRepository, visits repository.VisitRepository) *Coordinator {
	return &Coordinator{txRunner: txRunner, orders: orders, visits: visits}
}

// BatchItem es una línea (material, cantidad en paquetes) de un lote.
type BatchItem struct {
	MaterialID string
	Quantity   decimal.Decimal
}

// SaleInput entrada para una venta en mostrador.
type SaleInput struct {
	Items      []BatchItem
	ClientID   string // vacío = venta anónima, sin historial de compras
	TotalPrice *decimal.Decimal
	Note       string
}

// SaleResult movimientos creados y, si hubo cliente, sus productos a casa.
type SaleResult struct {
	Movements    []*entity.MaterialMovement
	HomeProducts []*entity.HomeProduct
}

// UsageInput entrada para un consumo profesional multi-línea.
type UsageInput struct {
	Items    []BatchItem
	ClientID string
	Note     string
}

// ManualMovementInput entrada para un ajuste manual desde la ficha del material.
// El signo se deriva de la causa: DELIVERY/PURCHASE suman, SALE/USAGE restan.
type ManualMovementInput struct {
	Type     string
	Quantity decimal.Decimal
	Note     string
}

// RecordSale valida el saldo de *todas* las líneas antes de mutar nada y
// registra la venta: débito + movimiento SALE por línea y, con cliente, un
// HomeProduct fotografiando nombre/unidad/paquete. Nota y precio total viajan
// solo en la primera línea; todas comparten TransactionID.
func (c *Coordinator) RecordSale(ctx context.Context, in SaleInput) (*SaleResult, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	if in.TotalPrice != nil && in.TotalPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()
	result := &SaleResult{}

	err := c.txRunner.RunSale(ctx, func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
		homeProducts repository.HomeProductRepository,
	) error {
		locked, err := lockAndGuard(materials, in.Items, causePolicies[entity.MovementSale])
		if err != nil {
			return err
		}
		for i, item := range in.Items {
			material := locked[item.MaterialID]
			mov, err := applyDebit(materials, movements, material, item.Quantity, movementParams{
				movType:       entity.MovementSale,
				transactionID: txID,
				clientID:      in.ClientID,
				note:          firstLineNote(i, in.Note),
				totalPrice:    firstLinePrice(i, in.TotalPrice),
				createdAt:     now,
			})
			if err != nil {
				return err
			}
			result.Movements = append(result.Movements, mov)

			if in.ClientID == "" {
				continue
			}
			hp := &entity.HomeProduct{
				ID:          uuid.New().String(),
				ClientID:    in.ClientID,
				MaterialID:  &material.ID,
				PurchaseID:  txID,
				Name:        material.Name,
				Quantity:    item.Quantity,
				Unit:        material.Unit,
				PackageSize: material.PackageSize,
				TotalPrice:  firstLinePrice(i, in.TotalPrice),
				Note:        firstLineNote(i, in.Note),
				CreatedAt:   now,
			}
			if err := homeProducts.Create(hp); err != nil {
				return err
			}
			result.HomeProducts = append(result.HomeProducts, hp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordUsage registra un consumo profesional: mismo guard de saldo que la
// venta, sin precio ni productos a casa.
func (c *Coordinator) RecordUsage(ctx context.Context, in UsageInput) ([]*entity.MaterialMovement, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}

	now := time.Now()
	txID := uuid.New().String()
	var created []*entity.MaterialMovement

	err := c.txRunner.Run(ctx, func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
	) error {
		locked, err := lockAndGuard(materials, in.Items, causePolicies[entity.MovementUsage])
		if err != nil {
			return err
		}
		for i, item := range in.Items {
			mov, err := applyDebit(materials, movements, locked[item.MaterialID], item.Quantity, movementParams{
				movType:       entity.MovementUsage,
				transactionID: txID,
				clientID:      in.ClientID,
				note:          firstLineNote(i, in.Note),
				createdAt:     now,
			})
			if err != nil {
				return err
			}
			created = append(created, mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordManualMovement registra un ajuste suelto sin pre-chequeo de saldo
// (espejo de la pantalla de detalle del material: puede dejar saldo negativo).
func (c *Coordinator) RecordManualMovement(ctx context.Context, materialID string, in ManualMovementInput) (*entity.MaterialMovement, error) {
	if materialID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.Type) || in.Type == entity.MovementVisit {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var created *entity.MaterialMovement

	err := c.txRunner.Run(ctx, func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
	) error {
		material, err := materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}

		signed := in.Quantity
		if !causePolicies[in.Type].credit {
			signed = in.Quantity.Neg()
		}
		if err := materials.UpdateStock(material.ID, material.StockQuantity.Add(signed)); err != nil {
			return err
		}
		created = &entity.MaterialMovement{
			ID:            uuid.New().String(),
			MaterialID:    material.ID,
			TransactionID: uuid.New().String(),
			Type:          in.Type,
			Quantity:      signed,
			Note:          in.Note,
			CreatedAt:     now,
		}
		return movements.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// movementParams agrupa los campos opcionales de una línea del libro.
type movementParams struct {
	movType       string
	transactionID string
	clientID      string
	visitID       string
	note          string
	totalPrice    *decimal.Decimal
	createdAt     time.Time
}

// lockAndGuard bloquea cada material del lote una sola vez (las líneas que
// repiten material comparten la fila bloqueada) y, si la causa es guarded,
// verifica que el saldo cubra la cantidad acumulada de todas las líneas del
// material antes de permitir mutación alguna.
func lockAndGuard(materials repository.MaterialRepository, items []BatchItem, policy causePolicy) (map[string]*entity.Material, error) {
	locked := make(map[string]*entity.Material, len(items))
	requested := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		material, ok := locked[item.MaterialID]
		if !ok {
			var err error
			material, err = materials.GetForUpdate(item.MaterialID)
			if err != nil {
				return nil, err
			}
			if material == nil {
				return nil, domain.ErrNotFound
			}
			locked[item.MaterialID] = material
		}
		total := requested[item.MaterialID].Add(item.Quantity)
		requested[item.MaterialID] = total
		if policy.guarded && material.StockQuantity.LessThan(total) {
			return nil, &domain.InsufficientStockError{
				MaterialID:   material.ID,
				MaterialName: material.Name,
				Requested:    total,
				Available:    material.StockQuantity,
			}
		}
	}
	return locked, nil
}

// applyDebit resta la cantidad del saldo y añade la línea negativa al libro.
// Actualiza también el saldo en memoria para que débitos sucesivos sobre el
// mismo material se acumulen en vez de pisarse.
func applyDebit(
	materials repository.MaterialRepository,
	movements repository.MovementRepository,
	material *entity.Material,
	quantity decimal.Decimal,
	p movementParams,
) (*entity.MaterialMovement, error) {
	balance := material.StockQuantity.Sub(quantity)
	if err := materials.UpdateStock(material.ID, balance); err != nil {
		return nil, err
	}
	material.StockQuantity = balance
	mov := &entity.MaterialMovement{
		ID:            uuid.New().String(),
		MaterialID:    material.ID,
		TransactionID: p.transactionID,
		Type:          p.movType,
		Quantity:      quantity.Neg(),
		Note:          p.note,
		TotalPrice:    p.totalPrice,
		CreatedAt:     p.createdAt,
	}
	if p.clientID != "" {
		mov.ClientID = &p.clientID
	}
	if p.visitID != "" {
		mov.VisitID = &p.visitID
	}
	if err := movements.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func validateItems(items []BatchItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.MaterialID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// firstLineNote aplica la convención: la nota del lote viaja en la primera línea.
func firstLineNote(i int, note string) string {
	if i == 0 {
		return note
	}
	return ""
}

// firstLinePrice ídem para el precio total.
func firstLinePrice(i int, price *decimal.Decimal) *decimal.Decimal {
	if i == 0 {
		return price
	}
	return nil
}
