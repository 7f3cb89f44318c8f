package request

import "github.com/shopspring/decimal"

// CreateFuelRequest represents a create fuel request
type CreateFuelRequest struct {
	Name           string          `json:"name" binding:"required,min=2,max=255"`
	PricePerGallon decimal.Decimal `json:"price_per_gallon"`
	StockGallons   decimal.Decimal `json:"stock_gallons"`
}

// UpdateFuelRequest represents an update fuel request
type UpdateFuelRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=2,max=255"`
	PricePerGallon *decimal.Decimal `json:"price_per_gallon"`
	StockGallons   *decimal.Decimal `json:"stock_gallons"`
}
