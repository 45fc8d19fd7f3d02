package service

import (
	"testing"

	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/internal/infrastructure/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newComposer(t *testing.T, caps *database.Capabilities) *JobComposer {
	t.Helper()
	return NewJobComposer(caps, zaptest.NewLogger(t))
}

func TestComposeStandardSynthesizesNotes(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())

	in := &IntakeInput{
		Division:         enum.DivisionMitigation,
		LossType:         "Water",
		LossCause:        "Burst pipe",
		LossCategory:     "2",
		LossClass:        "3",
		IntakeBy:         "Dana",
		InsuranceCompany: "State Farm",
		ClaimNumber:      "CLM-881",
		AdjusterName:     "Pat Reyes",
		AdjusterPhone:    "615-555-0110",
		AssignedTo:       "Crew 4",
		Notes:            "Homeowner on site after 3pm",
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-MIT-0001", nil)

	assert.Contains(t, job.InternalNotes, "INTAKE\nTaken by: Dana")
	assert.Contains(t, job.InternalNotes, "INSURANCE\nCarrier: State Farm")
	assert.Contains(t, job.InternalNotes, "Claim #: CLM-881")
	assert.Contains(t, job.InternalNotes, "Adjuster: Pat Reyes (615-555-0110)")
	assert.Contains(t, job.InternalNotes, "ASSIGNMENT\nAssigned to: Crew 4")
	assert.Contains(t, job.InternalNotes, "NOTES\nHomeowner on site after 3pm")

	require.NotNil(t, job.ScopeSummary)
	assert.Equal(t, "Water | Cause: Burst pipe | Cat 2 | Class 3", *job.ScopeSummary)
}

func TestComposeStandardOmitsEmptySections(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())

	in := &IntakeInput{
		Division: enum.DivisionMitigation,
		LossType: "Fire",
		Notes:    "Smoke damage only",
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-MIT-0002", nil)

	assert.Equal(t, "NOTES\nSmoke damage only", job.InternalNotes)
	require.NotNil(t, job.ScopeSummary)
	assert.Equal(t, "Fire", *job.ScopeSummary)
}

func TestComposeReferralTemplate(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())

	in := &IntakeInput{
		Division:           enum.DivisionReferral,
		JobName:            "Bellevue Office Park",
		RestorationCompany: "Apex Restoration",
		RestorationContact: "Kim Walsh",
		Notes:              "Apex handles mitigation, we handle rebuild",
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-REF-0001", nil)

	assert.Equal(t, "Referral", job.LossType)
	assert.Equal(t, enum.PropertyTypeCommercial, job.PropertyType)
	require.NotNil(t, job.JobName)
	assert.Equal(t, "Bellevue Office Park", *job.JobName)
	require.NotNil(t, job.RestorationCompany)
	assert.Equal(t, "Apex Restoration", *job.RestorationCompany)

	// Referral notes are the operator's free text, not the synthesized block
	assert.Equal(t, "Apex handles mitigation, we handle rebuild", job.InternalNotes)
}

func TestComposeLargeLossFixesLossType(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())

	in := &IntakeInput{Division: enum.DivisionLargeLoss}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-LL-0001", nil)

	assert.Equal(t, "Large Loss", job.LossType)
}

func TestComposeStormResidentialClearsCommercialGroup(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())
	stormID := uuid.New()
	ref := "PROP-0003"

	in := &IntakeInput{
		Division:       enum.DivisionRecon,
		LossType:       "Wind",
		StormEventID:   &stormID,
		PropertyType:   "residential",
		SquareFootage:  "2,400",
		RoomsAffected:  "5",
		FoundationType: "Slab",
		UnitsAffected:  "12", // must be ignored on the residential branch
		MSAOnFile:      true,
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-REC-0001", &ref)

	assert.Equal(t, enum.PropertyTypeResidential, job.PropertyType)
	require.NotNil(t, job.SquareFootage)
	assert.Equal(t, 2400, *job.SquareFootage)
	require.NotNil(t, job.RoomsAffected)
	assert.Equal(t, 5, *job.RoomsAffected)

	assert.Nil(t, job.UnitsAffected)
	assert.Nil(t, job.FloorsAffected)
	assert.False(t, job.MSAOnFile)

	require.NotNil(t, job.PropertyReference)
	assert.Equal(t, "PROP-0003", *job.PropertyReference)
	require.NotNil(t, job.StormEventID)
	assert.Equal(t, stormID, *job.StormEventID)
}

func TestComposeStormCommercialClearsResidentialGroup(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())
	stormID := uuid.New()

	in := &IntakeInput{
		Division:      enum.DivisionRecon,
		LossType:      "Hail",
		StormEventID:  &stormID,
		PropertyType:  "COMMERCIAL",
		UnitsAffected: "24",
		RoomsAffected: "3", // must be ignored on the commercial branch
		MSAOnFile:     true,
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-REC-0002", nil)

	assert.Equal(t, enum.PropertyTypeCommercial, job.PropertyType)
	require.NotNil(t, job.UnitsAffected)
	assert.Equal(t, 24, *job.UnitsAffected)
	assert.True(t, job.MSAOnFile)

	assert.Nil(t, job.RoomsAffected)
	assert.Nil(t, job.FoundationType)
	assert.Nil(t, job.BasementType)
}

func TestComposeStormDefaultsResidential(t *testing.T) {
	composer := newComposer(t, database.FullCapabilities())
	stormID := uuid.New()

	in := &IntakeInput{
		Division:     enum.DivisionRecon,
		LossType:     "Wind",
		StormEventID: &stormID,
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-REC-0003", nil)

	assert.Equal(t, enum.PropertyTypeResidential, job.PropertyType)
}

func TestComposeParsesCommaFormattedNumbers(t *testing.T) {
	assert.Nil(t, parseCommaInt(""))
	assert.Nil(t, parseCommaInt("about 5"))

	got := parseCommaInt("1,200")
	require.NotNil(t, got)
	assert.Equal(t, 1200, *got)

	got = parseCommaInt(" 24 ")
	require.NotNil(t, got)
	assert.Equal(t, 24, *got)
}

func TestComposeDropsColumnsStoreLacks(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	composer := NewJobComposer(
		database.WithoutColumns("square_footage", "property_reference", "storm_event_id"),
		zap.New(core),
	)

	stormID := uuid.New()
	ref := "PROP-0001"
	in := &IntakeInput{
		Division:      enum.DivisionRecon,
		LossType:      "Wind",
		StormEventID:  &stormID,
		SquareFootage: "1,800",
		RoomsAffected: "4",
	}

	job := composer.Compose(in, uuid.New(), uuid.New(), "26-REC-0004", &ref)

	// Unsupported fields are dropped, supported ones survive
	assert.Nil(t, job.SquareFootage)
	assert.Nil(t, job.PropertyReference)
	assert.Nil(t, job.StormEventID)
	require.NotNil(t, job.RoomsAffected)
	assert.Equal(t, 4, *job.RoomsAffected)

	entries := logs.FilterMessageSnippet("dropping fields").All()
	require.Len(t, entries, 1)
}
