package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer in the station registry, keyed by DNI
type Customer struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DNI             string         `gorm:"size:8;unique;not null" json:"dni"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	PaternalSurname string         `gorm:"size:255;not null" json:"paternal_surname"`
	MaternalSurname string         `gorm:"size:255" json:"maternal_surname"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	Address         *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	name := c.Name + " " + c.PaternalSurname
	if c.MaternalSurname != "" {
		name += " " + c.MaternalSurname
	}
	return name
}
