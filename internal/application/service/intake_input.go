package service

import (
	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/google/uuid"
)

// IntakeInput is the raw intake form as the operator submitted it: a flat
// bag of strings and booleans. Parsing and normalization happen in the
// composer, not at the edge, so the snapshot stored with the job matches
// what was typed.
type IntakeInput struct {
	Division enum.Division `json:"division"`

	// Caller / customer
	CallerName  string `json:"caller_name"`
	CallerPhone string `json:"caller_phone"`
	CallerEmail string `json:"caller_email"`
	Company     string `json:"company"`
	Source      string `json:"source"`

	// Loss location
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Loss classification
	PropertyType string `json:"property_type"`
	LossType     string `json:"loss_type"`
	LossCause    string `json:"loss_cause"`
	LossCategory string `json:"loss_category"`
	LossClass    string `json:"loss_class"`
	DateOfLoss   string `json:"date_of_loss"` // YYYY-MM-DD

	// Property condition (numeric fields may arrive comma-formatted, e.g. "1,200")
	SquareFootage string `json:"square_footage"`
	YearBuilt     string `json:"year_built"`
	PowerOn       bool   `json:"power_on"`

	// Residential group
	RoomsAffected  string `json:"rooms_affected"`
	FoundationType string `json:"foundation_type"`
	BasementType   string `json:"basement_type"`

	// Commercial group
	UnitsAffected   string `json:"units_affected"`
	FloorsAffected  string `json:"floors_affected"`
	ParkingLocation string `json:"parking_location"`
	MSAOnFile       bool   `json:"msa_on_file"`

	// Payment and insurance
	PaymentMethod    string `json:"payment_method"`
	InsuranceCompany string `json:"insurance_company"`
	PolicyNumber     string `json:"policy_number"`
	ClaimNumber      string `json:"claim_number"`
	Deductible       string `json:"deductible"`
	AdjusterName     string `json:"adjuster_name"`
	AdjusterPhone    string `json:"adjuster_phone"`
	AdjusterEmail    string `json:"adjuster_email"`

	// Referral / large-loss
	JobName            string `json:"job_name"`
	RestorationCompany string `json:"restoration_company"`
	RestorationContact string `json:"restoration_contact"`
	RestorationPhone   string `json:"restoration_phone"`

	// Intake metadata
	IntakeBy          string `json:"intake_by"`
	ReferralSource    string `json:"referral_source"`
	AuthorizedBy      string `json:"authorized_by"`
	AuthorizationDate string `json:"authorization_date"`
	AssignedTo        string `json:"assigned_to"`
	CrewLead          string `json:"crew_lead"`

	// Storm tracking
	StormEventID *uuid.UUID `json:"storm_event_id,omitempty"`

	Notes string `json:"notes"`
}

// IsStormIntake reports whether the storm template applies
func (in *IntakeInput) IsStormIntake() bool {
	return in.StormEventID != nil
}
