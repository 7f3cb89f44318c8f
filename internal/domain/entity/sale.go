package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale represents a completed fuel sale. SaleDate carries the business
// date in Peru local time (UTC-5); SaleTime is the wall-clock HH:MM:SS.
// For FACTURA sales the buyer's RUC and legal name are mandatory; for
// BOLETA they stay null.
type Sale struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	SaleDate     time.Time         `gorm:"type:date;not null;index" json:"sale_date"`
	SaleTime     string            `gorm:"size:8;not null" json:"sale_time"`
	DocumentType enum.DocumentType `gorm:"size:10;not null" json:"document_type"`
	RUC          *string           `gorm:"size:11;column:ruc" json:"ruc,omitempty"`
	LegalName    *string           `gorm:"size:255" json:"legal_name,omitempty"`
	Subtotal     decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	IGV          decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0;column:igv" json:"igv"`
	Total        decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"total"`
	Status       enum.SaleStatus   `gorm:"default:0" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Details  []SaleDetail  `gorm:"foreignKey:SaleID" json:"details,omitempty"`
	Payments []SalePayment `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleDetail represents a line item in a sale. Quantities are stored in
// gallons, the unit the stock ledger uses, regardless of the unit the
// quantity was entered in.
type SaleDetail struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	FuelID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"fuel_id"`
	VehiclePlate    *string         `gorm:"size:10" json:"vehicle_plate,omitempty"`
	QuantityGallons decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity_gallons"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
	Fuel Fuel `gorm:"foreignKey:FuelID" json:"fuel,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale detail
func (d *SaleDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleDetail model
func (SaleDetail) TableName() string {
	return "sale_details"
}

// SalePayment represents how a sale was paid. AmountReceived and
// ChangeDue only differ from the total for cash payments.
type SalePayment struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	Method         enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	AmountReceived decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount_received"`
	ChangeDue      decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"change_due"`
	CreatedAt      time.Time          `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale payment
func (p *SalePayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalePayment model
func (SalePayment) TableName() string {
	return "sale_payments"
}
