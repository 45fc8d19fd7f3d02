package service

import (
	"context"
	"testing"

	"github.com/fieldserve/restoration-api/internal/domain/enum"
	infraRepo "github.com/fieldserve/restoration-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func submitIntake(t *testing.T, db *gorm.DB, in *IntakeInput) *IntakeResult {
	t.Helper()

	result, err := newTestIntakeService(t, db, nil).Submit(context.Background(), in)
	require.NoError(t, err)
	return result
}

func TestUpdateJobSwitchToCommercialClearsResidentialFields(t *testing.T) {
	db := setupTestDB(t)

	in := standardIntake()
	in.RoomsAffected = "4"
	in.FoundationType = "Slab"
	in.BasementType = "Finished"

	created := submitIntake(t, db, in)
	assert.Equal(t, enum.PropertyTypeResidential, created.Job.PropertyType)

	jobRepo := infraRepo.NewJobRepository(db)
	svc := NewJobService(jobRepo)

	propertyType := "commercial"
	units := 12
	updated, err := svc.UpdateJob(context.Background(), &UpdateJobInput{
		ID:            created.Job.ID,
		PropertyType:  &propertyType,
		UnitsAffected: &units,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PropertyTypeCommercial, updated.PropertyType)

	// The stored row must have the residential group nulled, not left stale
	stored, err := jobRepo.GetByID(context.Background(), created.Job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, enum.PropertyTypeCommercial, stored.PropertyType)
	assert.Nil(t, stored.RoomsAffected)
	assert.Nil(t, stored.FoundationType)
	assert.Nil(t, stored.BasementType)
	require.NotNil(t, stored.UnitsAffected)
	assert.Equal(t, 12, *stored.UnitsAffected)
}

func TestUpdateJobSwitchToResidentialClearsCommercialFields(t *testing.T) {
	db := setupTestDB(t)

	in := standardIntake()
	in.PropertyType = "Commercial"
	in.UnitsAffected = "20"
	in.FloorsAffected = "3"
	in.ParkingLocation = "Rear garage"
	in.MSAOnFile = true

	created := submitIntake(t, db, in)
	assert.Equal(t, enum.PropertyTypeCommercial, created.Job.PropertyType)

	jobRepo := infraRepo.NewJobRepository(db)
	svc := NewJobService(jobRepo)

	propertyType := "Residential"
	rooms := 5
	_, err := svc.UpdateJob(context.Background(), &UpdateJobInput{
		ID:            created.Job.ID,
		PropertyType:  &propertyType,
		RoomsAffected: &rooms,
	})
	require.NoError(t, err)

	stored, err := jobRepo.GetByID(context.Background(), created.Job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, enum.PropertyTypeResidential, stored.PropertyType)
	assert.Nil(t, stored.UnitsAffected)
	assert.Nil(t, stored.FloorsAffected)
	assert.Nil(t, stored.ParkingLocation)
	assert.False(t, stored.MSAOnFile)
	require.NotNil(t, stored.RoomsAffected)
	assert.Equal(t, 5, *stored.RoomsAffected)
}

func TestUpdateJobSamePropertyTypeKeepsFieldGroup(t *testing.T) {
	db := setupTestDB(t)

	in := standardIntake()
	in.RoomsAffected = "4"
	in.FoundationType = "Crawlspace"

	created := submitIntake(t, db, in)

	jobRepo := infraRepo.NewJobRepository(db)
	svc := NewJobService(jobRepo)

	propertyType := "Residential"
	lossCause := "Supply line failure"
	updated, err := svc.UpdateJob(context.Background(), &UpdateJobInput{
		ID:           created.Job.ID,
		PropertyType: &propertyType,
		LossCause:    &lossCause,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.RoomsAffected)
	assert.Equal(t, 4, *updated.RoomsAffected)
	require.NotNil(t, updated.FoundationType)
	assert.Equal(t, "Crawlspace", *updated.FoundationType)
	require.NotNil(t, updated.LossCause)
	assert.Equal(t, "Supply line failure", *updated.LossCause)
}

func TestUpdateJobStatus(t *testing.T) {
	db := setupTestDB(t)
	created := submitIntake(t, db, standardIntake())

	jobRepo := infraRepo.NewJobRepository(db)
	svc := NewJobService(jobRepo)

	updated, err := svc.UpdateJobStatus(context.Background(), created.Job.ID, enum.JobStatusScheduled)
	require.NoError(t, err)
	assert.Equal(t, enum.JobStatusScheduled, updated.Status)

	_, err = svc.UpdateJobStatus(context.Background(), created.Job.ID, enum.JobStatus("archived"))
	require.Error(t, err)
}
