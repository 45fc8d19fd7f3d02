package entity

import (
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job is the unit of work created by an intake submission. Exactly one of
// the residential field group (rooms/foundation/basement) or the commercial
// field group (units/floors/parking/msa) is populated; updates that switch
// property type explicitly clear the other group rather than leaving it
// stale.
type Job struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JobNumber  string    `gorm:"size:50;unique;not null" json:"job_number"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`

	Status       enum.JobStatus    `gorm:"size:50;not null;default:'pending'" json:"status"`
	Division     enum.Division     `gorm:"size:50;not null;index" json:"division"`
	PropertyType enum.PropertyType `gorm:"size:20" json:"property_type"`

	// Loss classification
	LossType     string     `gorm:"size:50" json:"loss_type"`
	LossCause    *string    `gorm:"size:100" json:"loss_cause,omitempty"`
	LossCategory *string    `gorm:"size:10" json:"loss_category,omitempty"`
	LossClass    *string    `gorm:"size:10" json:"loss_class,omitempty"`
	DateOfLoss   *time.Time `gorm:"type:date" json:"date_of_loss,omitempty"`

	// Property condition
	SquareFootage *int  `json:"square_footage,omitempty"`
	YearBuilt     *int  `json:"year_built,omitempty"`
	PowerOn       bool  `gorm:"default:false" json:"power_on"`

	// Residential group
	RoomsAffected  *int    `json:"rooms_affected,omitempty"`
	FoundationType *string `gorm:"size:50" json:"foundation_type,omitempty"`
	BasementType   *string `gorm:"size:50" json:"basement_type,omitempty"`

	// Commercial group
	UnitsAffected   *int    `json:"units_affected,omitempty"`
	FloorsAffected  *int    `json:"floors_affected,omitempty"`
	ParkingLocation *string `gorm:"size:255" json:"parking_location,omitempty"`
	MSAOnFile       bool    `gorm:"column:msa_on_file;default:false" json:"msa_on_file"`

	// Payment and insurance
	PaymentMethod    *string `gorm:"size:50" json:"payment_method,omitempty"`
	InsuranceCompany *string `gorm:"size:255" json:"insurance_company,omitempty"`
	PolicyNumber     *string `gorm:"size:100" json:"policy_number,omitempty"`
	ClaimNumber      *string `gorm:"size:100" json:"claim_number,omitempty"`
	Deductible       *string `gorm:"size:50" json:"deductible,omitempty"`
	AdjusterName     *string `gorm:"size:255" json:"adjuster_name,omitempty"`
	AdjusterPhone    *string `gorm:"size:50" json:"adjuster_phone,omitempty"`
	AdjusterEmail    *string `gorm:"size:255" json:"adjuster_email,omitempty"`

	// Referral / large-loss specifics
	JobName            *string `gorm:"size:255" json:"job_name,omitempty"`
	RestorationCompany *string `gorm:"size:255" json:"restoration_company,omitempty"`
	RestorationContact *string `gorm:"size:255" json:"restoration_contact,omitempty"`
	RestorationPhone   *string `gorm:"size:50" json:"restoration_phone,omitempty"`

	// Storm tracking
	StormEventID      *uuid.UUID `gorm:"type:uuid;index" json:"storm_event_id,omitempty"`
	PropertyReference *string    `gorm:"size:50" json:"property_reference,omitempty"`

	InternalNotes string  `gorm:"type:text" json:"internal_notes"`
	ScopeSummary  *string `gorm:"size:500" json:"scope_summary,omitempty"`

	// Raw intake form as submitted, kept for audit
	IntakeSnapshot datatypes.JSON `json:"intake_snapshot,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Property   Property    `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	StormEvent *StormEvent `gorm:"foreignKey:StormEventID" json:"storm_event,omitempty"`
}

// BeforeCreate generates a UUID before creating a new job
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}

// ClearResidentialFields nulls the residential-only group
func (j *Job) ClearResidentialFields() {
	j.RoomsAffected = nil
	j.FoundationType = nil
	j.BasementType = nil
}

// ClearCommercialFields nulls the commercial-only group
func (j *Job) ClearCommercialFields() {
	j.UnitsAffected = nil
	j.FloorsAffected = nil
	j.ParkingLocation = nil
	j.MSAOnFile = false
}
