package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HomeProduct es el registro desnormalizado de una línea de venta al cliente:
// nombre, unidad y tamaño de paquete fotografiados en el momento de la venta.
// No participa del invariante de saldo; es solo historial de compras.
//
// PurchaseID comparte valor con el TransactionID de los movimientos de la
// misma venta. TotalPrice y Note solo viajan en la primera línea del lote.
type HomeProduct struct {
	ID          string
	ClientID    string
	MaterialID  *string
	PurchaseID  string
	Name        string
	Quantity    decimal.Decimal
	Unit        string
	PackageSize decimal.Decimal
	TotalPrice  *decimal.Decimal
	Note        string
	CreatedAt   time.Time
}
