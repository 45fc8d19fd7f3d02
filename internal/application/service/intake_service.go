package service

import (
	"context"
	"strings"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/pkg/apperror"
	"github.com/fieldserve/restoration-api/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IntakeService runs the intake workflow: resolve the customer, register
// the property, allocate a job number, compose and create the job. Each
// step needs the previous step's ids, so they run in strict order, and
// the writes are not wrapped in a transaction, so a late failure leaves
// the earlier records in place. There is no compensation; the operator
// resubmits and the flow runs again from the top.
type IntakeService struct {
	customerRepo repository.CustomerRepository
	propertyRepo repository.PropertyRepository
	jobRepo      repository.JobRepository
	numbers      *JobNumberService
	composer     *JobComposer
	logger       *zap.Logger
}

// NewIntakeService creates a new intake service
func NewIntakeService(
	customerRepo repository.CustomerRepository,
	propertyRepo repository.PropertyRepository,
	jobRepo repository.JobRepository,
	numbers *JobNumberService,
	composer *JobComposer,
	logger *zap.Logger,
) *IntakeService {
	return &IntakeService{
		customerRepo: customerRepo,
		propertyRepo: propertyRepo,
		jobRepo:      jobRepo,
		numbers:      numbers,
		composer:     composer,
		logger:       logger,
	}
}

// IntakeResult is the success payload returned to the operator
type IntakeResult struct {
	Customer  *entity.Customer `json:"customer"`
	Property  *entity.Property `json:"property"`
	Job       *entity.Job      `json:"job"`
	JobNumber string           `json:"job_number"`
}

// Submit runs the full intake workflow
func (s *IntakeService) Submit(ctx context.Context, in *IntakeInput) (*IntakeResult, error) {
	if err := validateIntake(in); err != nil {
		return nil, err
	}

	customer, err := s.ResolveCustomer(ctx, in.CallerName, in.CallerPhone, in.CallerEmail, in.Company, in.Source)
	if err != nil {
		return nil, err
	}

	property, err := s.RegisterProperty(ctx, customer.ID, in)
	if err != nil {
		return nil, err
	}

	jobNumber := s.numbers.AllocateJobNumber(ctx, in.Division)

	var propertyRef *string
	if in.IsStormIntake() {
		ref := s.numbers.AllocatePropertyReference(ctx, *in.StormEventID)
		propertyRef = &ref
	}

	job := s.composer.Compose(in, customer.ID, property.ID, jobNumber, propertyRef)
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	// Reload with relations for the success payload; the bare job is
	// still good enough if the reload fails.
	if full, err := s.jobRepo.GetWithRelations(ctx, job.ID); err == nil && full != nil {
		job = full
	}

	s.logger.Info("intake complete",
		zap.String("job_number", jobNumber),
		zap.String("customer_id", customer.ID.String()),
		zap.String("division", string(in.Division)))

	return &IntakeResult{
		Customer:  customer,
		Property:  property,
		Job:       job,
		JobNumber: jobNumber,
	}, nil
}

// ResolveCustomer finds or creates the customer for an intake. An existing
// record is reused only on an exact canonical-phone plus case-insensitive
// name match; the same phone under a different name gets a brand-new
// customer so distinct people sharing a phone are never merged. Reuse may
// patch a changed email, never name or phone. A failed search falls back
// to creation: losing dedup beats blocking the intake.
func (s *IntakeService) ResolveCustomer(ctx context.Context, name, phone, email, company, source string) (*entity.Customer, error) {
	digits := utils.NormalizePhone(phone)

	matches, err := s.customerRepo.SearchByPhone(ctx, digits)
	if err != nil {
		s.logger.Warn("customer search failed, creating without dedup", zap.Error(err))
		return s.createCustomer(ctx, name, digits, email, company, source)
	}

	for i := range matches {
		m := &matches[i]
		if m.Phone == digits && strings.EqualFold(m.Name, name) {
			if email != "" && (m.Email == nil || *m.Email != email) {
				m.Email = &email
				if err := s.customerRepo.Update(ctx, m); err != nil {
					return nil, err
				}
			}
			return m, nil
		}
	}

	return s.createCustomer(ctx, name, digits, email, company, source)
}

func (s *IntakeService) createCustomer(ctx context.Context, name, phoneDigits, email, company, source string) (*entity.Customer, error) {
	now := time.Now()
	contactType := "intake"
	customer := &entity.Customer{
		Name:            name,
		Phone:           phoneDigits,
		Email:           strPtr(email),
		Company:         strPtr(company),
		Source:          strPtr(source),
		LastContactAt:   &now,
		LastContactType: &contactType,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// RegisterProperty creates the property row for this intake. Always a new
// row; repeat losses at one address are distinct records. A missing city
// becomes "Unknown" because the store rejects null; missing coordinates
// stay nil because absence means "no geocode", not 0/0.
func (s *IntakeService) RegisterProperty(ctx context.Context, customerID uuid.UUID, in *IntakeInput) (*entity.Property, error) {
	city := strings.TrimSpace(in.City)
	if city == "" {
		city = "Unknown"
	}

	property := &entity.Property{
		CustomerID: customerID,
		Address:    in.Address,
		City:       city,
		State:      in.State,
		Zip:        in.Zip,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// validateIntake checks required fields before any network write
func validateIntake(in *IntakeInput) error {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(in.CallerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "caller_name", Message: "Caller name is required"})
	}
	if utils.NormalizePhone(in.CallerPhone) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "caller_phone", Message: "Caller phone is required"})
	}
	if strings.TrimSpace(in.Address) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "address", Message: "Address is required"})
	}
	if in.Division == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "division", Message: "Division is required"})
	}
	if !in.Division.IsReferralTrack() && strings.TrimSpace(in.LossType) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "loss_type", Message: "Loss type is required"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
