package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Causas de un movimiento de material.
const (
	MovementDelivery = "DELIVERY" // entrega de una orden de compra
	MovementPurchase = "PURCHASE" // entrada manual (compra suelta)
	MovementSale     = "SALE"     // venta en mostrador
	MovementUsage    = "USAGE"    // consumo/salida manual
	MovementVisit    = "VISIT"    // consumo al cerrar una visita
)

// ValidMovementType indica si la causa es una de las cinco soportadas.
func ValidMovementType(t string) bool {
	switch t {
	case MovementDelivery, MovementPurchase, MovementSale, MovementUsage, MovementVisit:
		return true
	}
	return false
}

// CreditMovementType indica si la causa suma stock (las demás restan).
func CreditMovementType(t string) bool {
	return t == MovementDelivery || t == MovementPurchase
}

// MaterialMovement es una entrada inmutable del libro de movimientos: cantidad
// con signo en paquetes (positivo suma, negativo resta). Nunca se actualiza ni
// se borra individualmente; el saldo del material es la proyección de su suma.
//
// TransactionID agrupa las líneas creadas por una misma operación (venta
// multi-producto, entrega de orden, cierre de visita). Sustituye al agrupado
// heurístico por timestamp redondeado del sistema anterior.
type MaterialMovement struct {
	ID            string
	MaterialID    string
	TransactionID string
	Type          string
	Quantity      decimal.Decimal // con signo, en paquetes
	Note          string
	ClientID      *string          // SALE/USAGE ligados a un cliente
	VisitID       *string          // VISIT
	TotalPrice    *decimal.Decimal // solo en la primera línea del lote
	CreatedAt     time.Time
}
