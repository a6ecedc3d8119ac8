package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. La transición es monótona:
// pending -> ordered -> delivered, sin regresiones.
const (
	OrderStatusPending   = "pending"
	OrderStatusOrdered   = "ordered"
	OrderStatusDelivered = "delivered"
)

// Order es una orden de compra a proveedor.
type Order struct {
	ID          string
	Status      string
	Note        string
	Items       []OrderItem
	CreatedAt   time.Time
	OrderedAt   *time.Time
	DeliveredAt *time.Time
}

// OrderItem es una línea de la orden. La cantidad entregada puede diferir de
// Quantity: al recibir, el albarán manda (ajustes y materiales extra).
type OrderItem struct {
	ID         string
	OrderID    string
	MaterialID string
	Quantity   decimal.Decimal // en paquetes
	Price      *decimal.Decimal
}
