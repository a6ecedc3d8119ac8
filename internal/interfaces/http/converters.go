package http

import (
	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
)

func toMovementDTO(m *entity.MaterialMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		MaterialID:    m.MaterialID,
		TransactionID: m.TransactionID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Note:          m.Note,
		ClientID:      m.ClientID,
		VisitID:       m.VisitID,
		TotalPrice:    m.TotalPrice,
		CreatedAt:     m.CreatedAt,
	}
}

func toOrderDTO(o *entity.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          o.ID,
		Status:      o.Status,
		Note:        o.Note,
		Items:       make([]dto.OrderItemResponse, 0, len(o.Items)),
		CreatedAt:   o.CreatedAt,
		OrderedAt:   o.OrderedAt,
		DeliveredAt: o.DeliveredAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:         item.ID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return resp
}
