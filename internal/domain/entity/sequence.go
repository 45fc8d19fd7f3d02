package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobSequence is the atomic counter backing job-number allocation.
// One row per (year, division code); NextSeq is the value the next
// allocation will receive.
type JobSequence struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Year         int       `gorm:"not null;uniqueIndex:idx_job_seq_scope" json:"year"`
	DivisionCode string    `gorm:"size:10;not null;uniqueIndex:idx_job_seq_scope" json:"division_code"`
	NextSeq      int       `gorm:"not null;default:1" json:"next_seq"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the JobSequence model
func (JobSequence) TableName() string {
	return "job_sequences"
}

// PropertySequence is the per-storm-event counter backing property
// references. Independent of the job-number scope.
type PropertySequence struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	StormEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"storm_event_id"`
	NextSeq      int       `gorm:"not null;default:1" json:"next_seq"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for the PropertySequence model
func (PropertySequence) TableName() string {
	return "property_sequences"
}
