package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVisitRequest abre un borrador de visita para un cliente.
type CreateVisitRequest struct {
	ClientID string `json:"clientId"`
}

// UpdateVisitRequest edita nota y precio del borrador.
type UpdateVisitRequest struct {
	Note       string           `json:"note"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

// AddVisitServiceRequest añade un servicio a la visita.
type AddVisitServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// VisitMaterialRequest añade o corrige una línea de material de un servicio.
type VisitMaterialRequest struct {
	MaterialID string          `json:"materialId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"` // g, ml, ks
}

// VisitResponse visita con servicios y materiales.
type VisitResponse struct {
	ID         string                 `json:"id"`
	ClientID   string                 `json:"clientId"`
	Status     string                 `json:"status"`
	Note       string                 `json:"note,omitempty"`
	TotalPrice *decimal.Decimal       `json:"totalPrice,omitempty"`
	Services   []VisitServiceResponse `json:"services"`
	CreatedAt  time.Time              `json:"createdAt"`
	ClosedAt   *time.Time             `json:"closedAt,omitempty"`
}

// VisitServiceResponse servicio realizado con sus líneas de material.
type VisitServiceResponse struct {
	ID        string                  `json:"id"`
	ServiceID string                  `json:"serviceId"`
	Order     int                     `json:"order"`
	Materials []VisitMaterialResponse `json:"materials"`
}

// VisitMaterialResponse línea de consumo registrada.
type VisitMaterialResponse struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"materialId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
}
