package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StormEvent groups the jobs and properties recorded under a single
// weather event. Property references are sequenced per storm event.
type StormEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	EventDate time.Time      `gorm:"type:date;not null" json:"event_date"`
	Region    string         `gorm:"size:100" json:"region"`
	Status    string         `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Jobs []Job `gorm:"foreignKey:StormEventID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new storm event
func (s *StormEvent) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StormEvent model
func (StormEvent) TableName() string {
	return "storm_events"
}
