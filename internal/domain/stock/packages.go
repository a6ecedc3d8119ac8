// Package stock contiene la aritmética de conversión a paquetes (servicio de dominio).
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

// Packages convierte una cantidad registrada en g/ml/ks al número de paquetes
// que representa. ks ya es paquetes; g y ml se dividen por el contenido del
// paquete. PackageSize <= 0 con g/ml es entrada inválida (división imposible).
func Packages(unit string, quantity, packageSize decimal.Decimal) (decimal.Decimal, error) {
	if !entity.ValidUnit(unit) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if unit == entity.UnitPiece {
		return quantity, nil
	}
	if packageSize.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return quantity.Div(packageSize), nil
}
