package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchItemRequest línea (material, cantidad en paquetes) de un lote.
type BatchItemRequest struct {
	MaterialID string          `json:"materialId"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// SaleRequest venta en mostrador (una o varias líneas).
type SaleRequest struct {
	Items      []BatchItemRequest `json:"items"`
	ClientID   string             `json:"clientId"`
	TotalPrice *decimal.Decimal   `json:"totalPrice"`
	Note       string             `json:"note"`
}

// SaleResponse movimientos y productos a casa creados por la venta.
type SaleResponse struct {
	Movements    []MovementResponse    `json:"movements"`
	HomeProducts []HomeProductResponse `json:"homeProducts"`
}

// UsageRequest consumo profesional multi-línea.
type UsageRequest struct {
	Items    []BatchItemRequest `json:"items"`
	ClientID string             `json:"clientId"`
	Note     string             `json:"note"`
}

// ManualMovementRequest ajuste manual desde la ficha del material.
// DELIVERY/PURCHASE suman stock, SALE/USAGE restan; sin chequeo de saldo.
type ManualMovementRequest struct {
	Type     string          `json:"type"`
	Quantity decimal.Decimal `json:"quantity"`
	Note     string          `json:"note"`
}

// DeliveryRequest ajustes del albarán al marcar una orden como entregada.
type DeliveryRequest struct {
	Overrides map[string]decimal.Decimal `json:"overrides"` // materialID -> cantidad recibida
	Extra     []BatchItemRequest         `json:"extra"`
}

// CloseVisitRequest precio y nota finales al cerrar una visita.
type CloseVisitRequest struct {
	TotalPrice *decimal.Decimal `json:"totalPrice"`
	Note       string           `json:"note"`
}

// HomeProductResponse línea del historial de compras de un cliente.
type HomeProductResponse struct {
	ID          string           `json:"id"`
	ClientID    string           `json:"clientId"`
	MaterialID  *string          `json:"materialId,omitempty"`
	PurchaseID  string           `json:"purchaseId"`
	Name        string           `json:"name"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit"`
	PackageSize decimal.Decimal  `json:"packageSize"`
	TotalPrice  *decimal.Decimal `json:"totalPrice,omitempty"`
	Note        string           `json:"note,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}
