package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer identity record. Name and phone are
// identity fields: once created they are never rewritten by the intake
// flow. A later intake with the same phone but a different name creates
// a separate customer instead of merging.
type Customer struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Phone           string         `gorm:"size:50;not null;index" json:"phone"` // digits-only canonical form
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	Company         *string        `gorm:"size:255" json:"company,omitempty"`
	Status          string         `gorm:"size:50;default:'active'" json:"status"`
	Source          *string        `gorm:"size:100" json:"source,omitempty"`
	LastContactAt   *time.Time     `json:"last_contact_at,omitempty"`
	LastContactType *string        `gorm:"size:50" json:"last_contact_type,omitempty"`
	Notes           *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Properties []Property `gorm:"foreignKey:CustomerID" json:"-"`
	Jobs       []Job      `gorm:"foreignKey:CustomerID" json:"-"`
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
