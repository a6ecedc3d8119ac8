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

// DeliveryInput ajustes del albarán al recibir una orden: cantidades
// corregidas por material (0 = línea no entregada) y materiales extra que no
// estaban en la orden original.
type DeliveryInput struct {
	Overrides map[string]decimal.Decimal // materialID -> cantidad recibida
	Extra     []BatchItem
}

// DeliveryResult la orden ya entregada y los movimientos aplicados.
type DeliveryResult struct {
	Order     *entity.Order
	Movements []*entity.MaterialMovement
}

// RecordDelivery aplica la entrega de una orden: acredita stock por cada línea
// (con la cantidad del albarán si difiere) y por cada material extra, crea un
// movimiento DELIVERY por línea y marca la orden como delivered. Solo la
// transición ordered -> delivered está permitida.
func (c *Coordinator) RecordDelivery(ctx context.Context, orderID string, in DeliveryInput) (*DeliveryResult, error) {
	order, err := c.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusOrdered {
		return nil, domain.ErrConflict
	}
	for _, qty := range in.Overrides {
		if qty.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, extra := range in.Extra {
		if extra.MaterialID == "" || !extra.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	txID := uuid.New().String()
	result := &DeliveryResult{Order: order}

	err = c.txRunner.RunOrder(ctx, func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
		orders repository.OrderRepository,
	) error {
		lines := make([]BatchItem, 0, len(order.Items)+len(in.Extra))
		for _, item := range order.Items {
			qty := item.Quantity
			if override, ok := in.Overrides[item.MaterialID]; ok {
				qty = override
			}
			if qty.IsZero() {
				continue // línea no entregada
			}
			lines = append(lines, BatchItem{MaterialID: item.MaterialID, Quantity: qty})
		}
		lines = append(lines, in.Extra...)

		for _, line := range lines {
			material, err := materials.GetForUpdate(line.MaterialID)
			if err != nil {
				return err
			}
			if material == nil {
				return domain.ErrNotFound
			}
			if err := materials.UpdateStock(material.ID, material.StockQuantity.Add(line.Quantity)); err != nil {
				return err
			}
			mov := &entity.MaterialMovement{
				ID:            uuid.New().String(),
				MaterialID:    material.ID,
				TransactionID: txID,
				Type:          entity.MovementDelivery,
				Quantity:      line.Quantity,
				Note:          noteOrderDelivered,
				CreatedAt:     now,
			}
			if err := movements.Create(mov); err != nil {
				return err
			}
			result.Movements = append(result.Movements, mov)
		}

		return orders.UpdateStatus(order.ID, entity.OrderStatusOrdered, entity.OrderStatusDelivered, nil, &now)
	})
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusDelivered
	order.DeliveredAt = &now
	return result, nil
}
