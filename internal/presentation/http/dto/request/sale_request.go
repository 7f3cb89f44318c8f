package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest represents one dispensed item. Exactly one of amount or
// quantity must be provided; unit applies to quantity entry only and
// defaults to gallons.
type SaleItemRequest struct {
	FuelID       uuid.UUID        `json:"fuel_id" binding:"required"`
	VehiclePlate *string          `json:"vehicle_plate" binding:"omitempty,max=10"`
	Amount       *decimal.Decimal `json:"amount"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         string           `json:"unit" binding:"omitempty,oneof=GALONES LITROS"`
}

// SalePaymentRequest represents one payment towards a sale
type SalePaymentRequest struct {
	Method         string          `json:"method" binding:"required,oneof=EFECTIVO TARJETA YAPE PLIN TRANSFERENCIA"`
	AmountReceived decimal.Decimal `json:"amount_received"`
}

// CreateSaleRequest represents a create sale request. RUC and legal name
// are only required for FACTURA.
type CreateSaleRequest struct {
	CustomerID   uuid.UUID            `json:"customer_id" binding:"required"`
	DocumentType string               `json:"document_type" binding:"required,oneof=BOLETA FACTURA"`
	RUC          string               `json:"ruc"`
	LegalName    string               `json:"legal_name"`
	Items        []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payments     []SalePaymentRequest `json:"payments" binding:"required,min=1,dive"`
}
