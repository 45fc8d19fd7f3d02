package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property represents a physical loss location tied to exactly one customer.
// Properties are never deduplicated: each intake creates a new row, so two
// losses at the same street address over time are distinct records.
type Property struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	Address    string         `gorm:"size:255;not null" json:"address"`
	City       string         `gorm:"size:100;not null" json:"city"` // defaulted to "Unknown", never null
	State      string         `gorm:"size:50" json:"state"`
	Zip        string         `gorm:"size:20" json:"zip"`
	// Nil coordinates mean "no geocode available"; never coerced to 0/0.
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Jobs     []Job    `gorm:"foreignKey:PropertyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new property
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Property model
func (Property) TableName() string {
	return "properties"
}
