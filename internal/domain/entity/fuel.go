package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fuel represents a fuel product dispensed by the station. Prices are per
// gallon; stock is tracked in gallons with three decimal places, matching
// what the pumps meter.
type Fuel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name           string          `gorm:"size:255;unique;not null" json:"name"`
	PricePerGallon decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_gallon"`
	StockGallons   decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0" json:"stock_gallons"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	SaleDetails []SaleDetail `gorm:"foreignKey:FuelID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new fuel
func (f *Fuel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Fuel model
func (Fuel) TableName() string {
	return "fuels"
}
