package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de orden de compra con sus líneas.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
	Note  string             `json:"note"`
}

// OrderItemRequest línea de la orden.
type OrderItemRequest struct {
	MaterialID string           `json:"materialId"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
}

// UpdateOrderStatusRequest avance de estado (pending -> ordered).
// La entrega va por su propio endpoint con los ajustes del albarán.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse orden con sus líneas.
type OrderResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Note        string              `json:"note,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
	OrderedAt   *time.Time          `json:"orderedAt,omitempty"`
	DeliveredAt *time.Time          `json:"deliveredAt,omitempty"`
}

// OrderItemResponse línea de la orden.
type OrderItemResponse struct {
	ID         string           `json:"id"`
	MaterialID string           `json:"materialId"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

// DeliveryResponse orden entregada y movimientos aplicados.
type DeliveryResponse struct {
	Order     OrderResponse      `json:"order"`
	Movements []MovementResponse `json:"movements"`
}
