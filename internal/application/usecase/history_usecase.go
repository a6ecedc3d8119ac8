package usecase

import (
	"time"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// SaleGroupResponse una transacción lógica del historial: todas las líneas
// que comparten TransactionID. Sustituye al agrupado heurístico por timestamp
// redondeado + cliente del sistema anterior.
type SaleGroupResponse struct {
	TransactionID string                 `json:"transactionId"`
	ClientID      *string                `json:"clientId,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	Movements     []dto.MovementResponse `json:"movements"`
}

// HistoryUseCase lecturas del libro para las vistas de historial.
type HistoryUseCase struct {
	movements repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movements repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movements: movements}
}

// SalesHistory ventas y consumos agrupados por transacción, recientes primero.
// clientID vacío = todos los clientes.
func (uc *HistoryUseCase) SalesHistory(clientID string) ([]SaleGroupResponse, error) {
	list, err := uc.movements.ListByTypes([]string{entity.MovementSale, entity.MovementUsage}, clientID)
	if err != nil {
		return nil, err
	}

	// El repo devuelve por recencia; agrupar preservando el orden de aparición.
	groups := make([]SaleGroupResponse, 0)
	index := make(map[string]int)
	for _, m := range list {
		i, ok := index[m.TransactionID]
		if !ok {
			i = len(groups)
			index[m.TransactionID] = i
			groups = append(groups, SaleGroupResponse{
				TransactionID: m.TransactionID,
				ClientID:      m.ClientID,
				CreatedAt:     m.CreatedAt,
			})
		}
		groups[i].Movements = append(groups[i].Movements, toMovementResponse(m))
	}
	return groups, nil
}
