package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/internal/infrastructure/database"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// JobComposer assembles the job record from an intake form. The field
// template depends on the division (standard loss vs referral/large-loss)
// and on whether the intake is tied to a storm event. Optional columns the
// connected store lacks are dropped up front; the submission still
// succeeds, minus that data.
type JobComposer struct {
	caps   *database.Capabilities
	logger *zap.Logger
}

// NewJobComposer creates a new job composer
func NewJobComposer(caps *database.Capabilities, logger *zap.Logger) *JobComposer {
	return &JobComposer{caps: caps, logger: logger}
}

// Compose builds the unsaved job row. propertyReference is non-nil only
// for storm intakes that got one allocated.
func (c *JobComposer) Compose(in *IntakeInput, customerID, propertyID uuid.UUID, jobNumber string, propertyReference *string) *entity.Job {
	job := &entity.Job{
		JobNumber:  jobNumber,
		CustomerID: customerID,
		PropertyID: propertyID,
		Status:     enum.JobStatusPending,
		Division:   in.Division,
	}

	if snapshot, err := json.Marshal(in); err == nil {
		job.IntakeSnapshot = datatypes.JSON(snapshot)
	}

	switch {
	case in.IsStormIntake():
		c.composeStorm(job, in, propertyReference)
	case in.Division.IsReferralTrack():
		c.composeReferral(job, in)
	default:
		c.composeStandard(job, in)
	}

	c.applyCapabilities(job)
	return job
}

// composeReferral fills the referral/large-loss template. The loss type is
// fixed by the division, property type defaults to commercial, and the
// internal notes hold only the operator's free text.
func (c *JobComposer) composeReferral(job *entity.Job, in *IntakeInput) {
	if in.Division == enum.DivisionLargeLoss {
		job.LossType = "Large Loss"
	} else {
		job.LossType = "Referral"
	}

	job.PropertyType = enum.NormalizePropertyType(in.PropertyType)
	if job.PropertyType == "" {
		job.PropertyType = enum.PropertyTypeCommercial
	}

	job.JobName = strPtr(in.JobName)
	job.InsuranceCompany = strPtr(in.InsuranceCompany)
	job.PolicyNumber = strPtr(in.PolicyNumber)
	job.AdjusterName = strPtr(in.AdjusterName)
	job.AdjusterPhone = strPtr(in.AdjusterPhone)
	job.AdjusterEmail = strPtr(in.AdjusterEmail)
	job.RestorationCompany = strPtr(in.RestorationCompany)
	job.RestorationContact = strPtr(in.RestorationContact)
	job.RestorationPhone = strPtr(in.RestorationPhone)

	job.InternalNotes = in.Notes
}

// composeStandard fills the standard-loss template: the selected loss type
// plus a synthesized multi-section internal notes block and a one-line
// scope summary.
func (c *JobComposer) composeStandard(job *entity.Job, in *IntakeInput) {
	job.LossType = in.LossType
	job.LossCause = strPtr(in.LossCause)
	job.LossCategory = strPtr(in.LossCategory)
	job.LossClass = strPtr(in.LossClass)
	job.DateOfLoss = parseDate(in.DateOfLoss)
	job.PropertyType = enum.NormalizePropertyType(in.PropertyType)

	job.PaymentMethod = strPtr(in.PaymentMethod)
	job.InsuranceCompany = strPtr(in.InsuranceCompany)
	job.PolicyNumber = strPtr(in.PolicyNumber)
	job.ClaimNumber = strPtr(in.ClaimNumber)
	job.Deductible = strPtr(in.Deductible)
	job.AdjusterName = strPtr(in.AdjusterName)
	job.AdjusterPhone = strPtr(in.AdjusterPhone)
	job.AdjusterEmail = strPtr(in.AdjusterEmail)

	job.InternalNotes = synthesizeInternalNotes(in)
	job.ScopeSummary = strPtr(scopeSummary(in))
}

// composeStorm fills the storm-intake template. Exactly one of the
// residential or commercial field group is populated; the other stays
// zero-valued. Numeric fields may arrive comma-formatted from the form.
func (c *JobComposer) composeStorm(job *entity.Job, in *IntakeInput, propertyReference *string) {
	job.LossType = in.LossType
	job.LossCause = strPtr(in.LossCause)
	job.DateOfLoss = parseDate(in.DateOfLoss)
	job.StormEventID = in.StormEventID
	job.PropertyReference = propertyReference

	job.PropertyType = enum.NormalizePropertyType(in.PropertyType)
	if job.PropertyType == "" {
		job.PropertyType = enum.PropertyTypeResidential
	}

	job.SquareFootage = parseCommaInt(in.SquareFootage)
	job.YearBuilt = parseCommaInt(in.YearBuilt)
	job.PowerOn = in.PowerOn

	if job.PropertyType.IsCommercial() {
		job.UnitsAffected = parseCommaInt(in.UnitsAffected)
		job.FloorsAffected = parseCommaInt(in.FloorsAffected)
		job.ParkingLocation = strPtr(in.ParkingLocation)
		job.MSAOnFile = in.MSAOnFile
		job.ClearResidentialFields()
	} else {
		job.RoomsAffected = parseCommaInt(in.RoomsAffected)
		job.FoundationType = strPtr(in.FoundationType)
		job.BasementType = strPtr(in.BasementType)
		job.ClearCommercialFields()
	}

	job.PaymentMethod = strPtr(in.PaymentMethod)
	job.InsuranceCompany = strPtr(in.InsuranceCompany)
	job.PolicyNumber = strPtr(in.PolicyNumber)
	job.ClaimNumber = strPtr(in.ClaimNumber)

	job.InternalNotes = in.Notes
}

// applyCapabilities drops optional fields the connected store cannot hold.
// The dropped data is lost for this submission; that is logged, not fatal.
func (c *JobComposer) applyCapabilities(job *entity.Job) {
	if c.caps == nil {
		return
	}

	var dropped []string
	drop := func(col string, clear func()) {
		if !c.caps.HasColumn(col) {
			clear()
			dropped = append(dropped, col)
		}
	}

	drop("square_footage", func() { job.SquareFootage = nil })
	drop("year_built", func() { job.YearBuilt = nil })
	drop("power_on", func() { job.PowerOn = false })
	drop("rooms_affected", func() { job.RoomsAffected = nil })
	drop("foundation_type", func() { job.FoundationType = nil })
	drop("basement_type", func() { job.BasementType = nil })
	drop("units_affected", func() { job.UnitsAffected = nil })
	drop("floors_affected", func() { job.FloorsAffected = nil })
	drop("parking_location", func() { job.ParkingLocation = nil })
	drop("msa_on_file", func() { job.MSAOnFile = false })
	drop("property_reference", func() { job.PropertyReference = nil })
	drop("storm_event_id", func() { job.StormEventID = nil })

	if len(dropped) > 0 {
		c.logger.Warn("store schema lacks optional job columns, dropping fields for this submission",
			zap.String("job_number", job.JobNumber),
			zap.Strings("columns", dropped))
	}
}

// synthesizeInternalNotes builds the multi-section notes block for standard
// losses. A section is emitted only when at least one of its fields is set.
func synthesizeInternalNotes(in *IntakeInput) string {
	var sections []string

	if in.IntakeBy != "" || in.ReferralSource != "" {
		var parts []string
		if in.IntakeBy != "" {
			parts = append(parts, "Taken by: "+in.IntakeBy)
		}
		if in.ReferralSource != "" {
			parts = append(parts, "Referral source: "+in.ReferralSource)
		}
		sections = append(sections, "INTAKE\n"+strings.Join(parts, "\n"))
	}

	if in.InsuranceCompany != "" || in.PolicyNumber != "" || in.ClaimNumber != "" || in.Deductible != "" || in.AdjusterName != "" {
		var parts []string
		if in.InsuranceCompany != "" {
			parts = append(parts, "Carrier: "+in.InsuranceCompany)
		}
		if in.PolicyNumber != "" {
			parts = append(parts, "Policy #: "+in.PolicyNumber)
		}
		if in.ClaimNumber != "" {
			parts = append(parts, "Claim #: "+in.ClaimNumber)
		}
		if in.Deductible != "" {
			parts = append(parts, "Deductible: "+in.Deductible)
		}
		if in.AdjusterName != "" {
			adjuster := "Adjuster: " + in.AdjusterName
			if in.AdjusterPhone != "" {
				adjuster += " (" + in.AdjusterPhone + ")"
			}
			parts = append(parts, adjuster)
		}
		sections = append(sections, "INSURANCE\n"+strings.Join(parts, "\n"))
	}

	if in.AuthorizedBy != "" || in.AuthorizationDate != "" {
		var parts []string
		if in.AuthorizedBy != "" {
			parts = append(parts, "Authorized by: "+in.AuthorizedBy)
		}
		if in.AuthorizationDate != "" {
			parts = append(parts, "Authorization date: "+in.AuthorizationDate)
		}
		sections = append(sections, "AUTHORIZATION\n"+strings.Join(parts, "\n"))
	}

	if in.AssignedTo != "" || in.CrewLead != "" {
		var parts []string
		if in.AssignedTo != "" {
			parts = append(parts, "Assigned to: "+in.AssignedTo)
		}
		if in.CrewLead != "" {
			parts = append(parts, "Crew lead: "+in.CrewLead)
		}
		sections = append(sections, "ASSIGNMENT\n"+strings.Join(parts, "\n"))
	}

	if in.Notes != "" {
		sections = append(sections, "NOTES\n"+in.Notes)
	}

	return strings.Join(sections, "\n\n")
}

// scopeSummary builds the single-line pipe-delimited digest of the loss
// classification fields.
func scopeSummary(in *IntakeInput) string {
	var parts []string
	if in.LossType != "" {
		parts = append(parts, in.LossType)
	}
	if in.LossCause != "" {
		parts = append(parts, "Cause: "+in.LossCause)
	}
	if in.LossCategory != "" {
		parts = append(parts, "Cat "+in.LossCategory)
	}
	if in.LossClass != "" {
		parts = append(parts, "Class "+in.LossClass)
	}
	return strings.Join(parts, " | ")
}

// parseCommaInt parses a possibly comma-formatted numeric string ("1,200").
// Returns nil when empty or unparseable.
func parseCommaInt(s string) *int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// parseDate parses a YYYY-MM-DD form value. Returns nil when empty or malformed.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// strPtr returns nil for the empty string so optional columns stay null
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
