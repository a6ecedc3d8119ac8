package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de material. El stock inicial se acepta aquí y
// nunca más por edición directa (después solo se mueve vía movimientos).
type CreateMaterialRequest struct {
	Name            string          `json:"name"`
	GroupID         string          `json:"groupId"`
	Unit            string          `json:"unit"` // g, ml, ks
	PackageSize     decimal.Decimal `json:"packageSize"`
	StockQuantity   decimal.Decimal `json:"stockQuantity"`
	MinStock        decimal.Decimal `json:"minStock"`
	IsRetailProduct bool            `json:"isRetailProduct"`
}

// UpdateMaterialRequest edición de ficha; sin stockQuantity a propósito.
type UpdateMaterialRequest struct {
	Name            *string          `json:"name"`
	GroupID         *string          `json:"groupId"`
	Unit            *string          `json:"unit"`
	PackageSize     *decimal.Decimal `json:"packageSize"`
	MinStock        *decimal.Decimal `json:"minStock"`
	IsRetailProduct *bool            `json:"isRetailProduct"`
}

// MaterialResponse ficha de material.
type MaterialResponse struct {
	ID              string          `json:"id"`
	GroupID         string          `json:"groupId"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	PackageSize     decimal.Decimal `json:"packageSize"`
	StockQuantity   decimal.Decimal `json:"stockQuantity"`
	MinStock        decimal.Decimal `json:"minStock"`
	IsRetailProduct bool            `json:"isRetailProduct"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// MovementResponse una línea del libro de movimientos.
type MovementResponse struct {
	ID            string           `json:"id"`
	MaterialID    string           `json:"materialId"`
	TransactionID string           `json:"transactionId"`
	Type          string           `json:"type"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Note          string           `json:"note,omitempty"`
	ClientID      *string          `json:"clientId,omitempty"`
	VisitID       *string          `json:"visitId,omitempty"`
	TotalPrice    *decimal.Decimal `json:"totalPrice,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// MaterialGroupResponse grupo del catálogo de materiales.
type MaterialGroupResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// BulkImportMaterial una fila de material del import masivo.
type BulkImportMaterial struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	PackageSize     decimal.Decimal `json:"packageSize"`
	StockQuantity   decimal.Decimal `json:"stockQuantity"`
	MinStock        decimal.Decimal `json:"minStock"`
	IsRetailProduct bool            `json:"isRetailProduct"`
}

// BulkImportGroup un grupo del import masivo con sus materiales.
type BulkImportGroup struct {
	Name      string               `json:"name"`
	Materials []BulkImportMaterial `json:"materials"`
}

// BulkImportRequest carga inicial del almacén: grupos con sus materiales en
// una sola petición (asistente de puesta en marcha).
type BulkImportRequest struct {
	Groups []BulkImportGroup `json:"groups"`
}

// BulkImportResponse lo creado por el import masivo.
type BulkImportResponse struct {
	Groups    []MaterialGroupResponse `json:"groups"`
	Materials []MaterialResponse      `json:"materials"`
}
