package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/internal/infrastructure/database"
	infraRepo "github.com/fieldserve/restoration-api/internal/infrastructure/repository"
	"github.com/fieldserve/restoration-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func standardIntake() *IntakeInput {
	return &IntakeInput{
		Division:    enum.DivisionMitigation,
		CallerName:  "Jordan Miles",
		CallerPhone: "(615) 555-0142",
		CallerEmail: "jordan@example.com",
		Address:     "412 Elm St",
		City:        "Nashville",
		State:       "TN",
		Zip:         "37201",
		LossType:    "Water",
	}
}

func TestSubmitCreatesCustomerPropertyAndJob(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	result, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	yy := time.Now().Year() % 100
	assert.Equal(t, fmt.Sprintf("%02d-MIT-0001", yy), result.JobNumber)

	require.NotNil(t, result.Customer)
	assert.Equal(t, "Jordan Miles", result.Customer.Name)
	assert.Equal(t, "6155550142", result.Customer.Phone)

	require.NotNil(t, result.Property)
	assert.Equal(t, result.Customer.ID, result.Property.CustomerID)

	require.NotNil(t, result.Job)
	assert.Equal(t, enum.JobStatusPending, result.Job.Status)
	assert.Equal(t, result.JobNumber, result.Job.JobNumber)
	assert.NotEmpty(t, result.Job.IntakeSnapshot)
}

func TestSubmitValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	_, err := svc.Submit(context.Background(), &IntakeInput{Division: enum.DivisionMitigation})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["caller_name"])
	assert.True(t, fields["caller_phone"])
	assert.True(t, fields["address"])
	assert.True(t, fields["loss_type"])
}

func TestSubmitReferralSkipsLossTypeRequirement(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	in := standardIntake()
	in.Division = enum.DivisionReferral
	in.LossType = ""

	result, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Referral", result.Job.LossType)
}

func TestResolveCustomerReusesExactMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	first, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	// Same caller, different phone formatting and casing
	in := standardIntake()
	in.CallerName = "JORDAN MILES"
	in.CallerPhone = "615-555-0142"
	in.CallerEmail = "jordan.new@example.com"

	second, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Customer.ID, second.Customer.ID)

	// Email is patched on reuse, name is not rewritten
	require.NotNil(t, second.Customer.Email)
	assert.Equal(t, "jordan.new@example.com", *second.Customer.Email)
	assert.Equal(t, "Jordan Miles", second.Customer.Name)

	var count int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveCustomerSamePhoneDifferentName(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	first, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	in := standardIntake()
	in.CallerName = "Casey Miles" // spouse calling from the same number

	second, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, first.Customer.ID, second.Customer.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDuplicateSubmitCreatesNewPropertyAndJob(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	first, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	// One customer, but properties are never deduplicated
	assert.Equal(t, first.Customer.ID, second.Customer.ID)
	assert.NotEqual(t, first.Property.ID, second.Property.ID)
	assert.NotEqual(t, first.JobNumber, second.JobNumber)

	var properties, jobs int64
	require.NoError(t, db.Model(&entity.Property{}).Count(&properties).Error)
	require.NoError(t, db.Model(&entity.Job{}).Count(&jobs).Error)
	assert.EqualValues(t, 2, properties)
	assert.EqualValues(t, 2, jobs)
}

func TestRegisterPropertyDefaultsCityUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	in := standardIntake()
	in.City = "  "

	result, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Unknown", result.Property.City)
}

func TestRegisterPropertyKeepsNilCoordinates(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	result, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	assert.Nil(t, result.Property.Latitude)
	assert.Nil(t, result.Property.Longitude)

	in := standardIntake()
	lat, lng := 36.1627, -86.7816
	in.Latitude = &lat
	in.Longitude = &lng

	result, err = svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, result.Property.Latitude)
	assert.Equal(t, 36.1627, *result.Property.Latitude)
}

func TestSubmitStormIntakeAllocatesPropertyReference(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	storm := &entity.StormEvent{Name: "April Hail", EventDate: time.Now(), Region: "Middle TN"}
	require.NoError(t, db.Create(storm).Error)

	in := standardIntake()
	in.Division = enum.DivisionRecon
	in.LossType = "Hail"
	in.StormEventID = &storm.ID
	in.RoomsAffected = "3"

	first, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, first.Job.PropertyReference)
	assert.Equal(t, "PROP-0001", *first.Job.PropertyReference)
	require.NotNil(t, first.Job.StormEventID)
	assert.Equal(t, storm.ID, *first.Job.StormEventID)

	second, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, second.Job.PropertyReference)
	assert.Equal(t, "PROP-0002", *second.Job.PropertyReference)
}

func TestSubmitNonStormIntakeHasNoPropertyReference(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	result, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	assert.Nil(t, result.Job.PropertyReference)
	assert.Nil(t, result.Job.StormEventID)
}

// searchFailingCustomerRepo loses the phone search while writes still work
type searchFailingCustomerRepo struct {
	repository.CustomerRepository
}

func (r *searchFailingCustomerRepo) SearchByPhone(ctx context.Context, phoneDigits string) ([]entity.Customer, error) {
	return nil, errors.New("connection refused")
}

func TestResolveCustomerSearchFailureFallsBackToCreate(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)

	customerRepo := &searchFailingCustomerRepo{infraRepo.NewCustomerRepository(db)}
	numbers := NewJobNumberService(infraRepo.NewSequenceRepository(db), log)
	composer := NewJobComposer(database.FullCapabilities(), log)
	svc := NewIntakeService(customerRepo, infraRepo.NewPropertyRepository(db),
		infraRepo.NewJobRepository(db), numbers, composer, log)

	// An existing record a working search would have reused
	existing := &entity.Customer{Name: "Jordan Miles", Phone: "6155550142"}
	require.NoError(t, db.Create(existing).Error)

	result, err := svc.Submit(context.Background(), standardIntake())
	require.NoError(t, err)

	require.NotNil(t, result.Customer)
	assert.Equal(t, "Jordan Miles", result.Customer.Name)
	assert.Equal(t, "6155550142", result.Customer.Phone)

	// Dedup is lost, the intake is not
	assert.NotEqual(t, existing.ID, result.Customer.ID)

	var customers, jobs int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&entity.Job{}).Count(&jobs).Error)
	assert.EqualValues(t, 2, customers)
	assert.EqualValues(t, 1, jobs)
}

func TestSubmitSucceedsWhenStoreLacksOptionalColumns(t *testing.T) {
	db := setupTestDB(t)
	log := zaptest.NewLogger(t)

	numbers := NewJobNumberService(infraRepo.NewSequenceRepository(db), log)
	composer := NewJobComposer(database.WithoutColumns("basement_type"), log)
	jobRepo := infraRepo.NewJobRepository(db)
	svc := NewIntakeService(infraRepo.NewCustomerRepository(db),
		infraRepo.NewPropertyRepository(db), jobRepo, numbers, composer, log)

	in := standardIntake()
	in.RoomsAffected = "3"
	in.BasementType = "Finished"

	result, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	stored, err := jobRepo.GetByID(context.Background(), result.Job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, result.JobNumber, stored.JobNumber)

	// The unsupported field is dropped, the rest of the row lands
	assert.Nil(t, stored.BasementType)
	require.NotNil(t, stored.RoomsAffected)
	assert.Equal(t, 3, *stored.RoomsAffected)
}

func TestResolveCustomerDirect(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestIntakeService(t, db, nil)

	created, err := svc.ResolveCustomer(context.Background(), "Avery Hall", "615-555-0100", "", "", "web")
	require.NoError(t, err)
	assert.Equal(t, "6155550100", created.Phone)
	require.NotNil(t, created.LastContactType)
	assert.Equal(t, "intake", *created.LastContactType)

	reused, err := svc.ResolveCustomer(context.Background(), "avery hall", "(615) 555-0100", "", "", "web")
	require.NoError(t, err)
	assert.Equal(t, created.ID, reused.ID)

	other, err := svc.ResolveCustomer(context.Background(), "Avery Hall", "615-555-0199", "", "", "web")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}
