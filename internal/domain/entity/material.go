package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida de un material.
const (
	UnitGram       = "g"  // gramos
	UnitMilliliter = "ml" // mililitros
	UnitPiece      = "ks" // piezas (kusy) — la cantidad ya está en paquetes
)

// ValidUnit indica si la unidad es una de las tres soportadas.
func ValidUnit(unit string) bool {
	return unit == UnitGram || unit == UnitMilliliter || unit == UnitPiece
}

// Material es un artículo en stock. StockQuantity se expresa en *paquetes*
// (fraccionable) y solo se modifica a través del coordinador de movimientos,
// nunca por edición directa.
type Material struct {
	ID              string
	GroupID         string
	Name            string
	Unit            string          // g, ml, ks
	PackageSize     decimal.Decimal // contenido de un paquete, en Unit
	StockQuantity   decimal.Decimal // saldo actual, en paquetes
	MinStock        decimal.Decimal // umbral de reposición; 0 = deshabilitado
	IsRetailProduct bool            // vendible en mostrador vs. solo uso profesional
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MaterialGroup agrupa materiales para los filtros del catálogo.
type MaterialGroup struct {
	ID        string
	Name      string
	Order     int
	CreatedAt time.Time
}
