package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una visita. saved es el borrador (no toca stock); closed es
// terminal y es el único camino que descuenta materiales.
const (
	VisitStatusSaved  = "saved"
	VisitStatusClosed = "closed"
)

// Visit es una cita de un cliente con sus servicios realizados.
// Borrar una visita no revierte consumo: las saved nunca tocaron stock y el
// consumo de las closed es definitivo.
type Visit struct {
	ID         string
	ClientID   string
	Status     string
	Note       string
	TotalPrice *decimal.Decimal
	Services   []VisitService
	CreatedAt  time.Time
	ClosedAt   *time.Time
}

// VisitService es un servicio realizado dentro de una visita.
type VisitService struct {
	ID        string
	VisitID   string
	ServiceID string
	Order     int
	Materials []VisitMaterial
}

// VisitMaterial es el consumo registrado de un material en un servicio.
// Quantity está en Unit (g/ml/ks); al cerrar la visita se convierte a paquetes
// según el PackageSize del material.
type VisitMaterial struct {
	ID             string
	VisitServiceID string
	MaterialID     string
	Quantity       decimal.Decimal
	Unit           string
}
