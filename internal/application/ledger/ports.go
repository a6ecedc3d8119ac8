package ledger

import (
	"context"

	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza el todo-o-nada de cada lote:
// si el callback retorna error no queda visible ninguna mutación parcial.
type TxRunner interface {
	// Run cubre los lotes que solo tocan stock y libro (usage, movimiento manual).
	Run(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
	) error) error

	// RunSale añade el repositorio de productos a casa (ventas en mostrador).
	RunSale(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
		homeProducts repository.HomeProductRepository,
	) error) error

	// RunOrder añade el repositorio de órdenes (entrega de orden de compra).
	RunOrder(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
		orders repository.OrderRepository,
	) error) error

	// RunVisit añade el repositorio de visitas (cierre de visita).
	RunVisit(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		movements repository.MovementRepository,
		visits repository.VisitRepository,
	) error) error
}
