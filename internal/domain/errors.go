package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError identifica el material sin stock y las cantidades en juego,
// para que la capa HTTP pueda nombrar al culpable en el mensaje de error.
type InsufficientStockError struct {
	MaterialID   string
	MaterialName string
	Requested    decimal.Decimal
	Available    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: solicitado %s, disponible %s",
		e.MaterialName, e.Requested.String(), e.Available.String())
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
