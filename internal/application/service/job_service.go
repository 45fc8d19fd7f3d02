package service

import (
	"context"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/pkg/apperror"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/google/uuid"
)

// JobService handles job read/update operations after intake
type JobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// GetJob retrieves a job with its customer, property and storm event
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	return job, nil
}

// GetJobByNumber retrieves a job by its job number
func (s *JobService) GetJobByNumber(ctx context.Context, jobNumber string) (*entity.Job, error) {
	job, err := s.jobRepo.GetByJobNumber(ctx, jobNumber)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	return job, nil
}

// ListJobs lists jobs filtered by status, division, storm event or search term
func (s *JobService) ListJobs(ctx context.Context, params *repository.JobFilterParams) (*pagination.PaginatedResult[entity.Job], error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid status filter"}})
	}

	jobs, total, err := s.jobRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(jobs, pag), nil
}

// UpdateJobInput represents the update job input
type UpdateJobInput struct {
	ID           uuid.UUID
	PropertyType *string
	LossType     *string
	LossCause    *string
	LossCategory *string
	LossClass    *string
	DateOfLoss   *time.Time

	SquareFootage *int
	YearBuilt     *int
	PowerOn       *bool

	RoomsAffected  *int
	FoundationType *string
	BasementType   *string

	UnitsAffected   *int
	FloorsAffected  *int
	ParkingLocation *string
	MSAOnFile       *bool

	PaymentMethod    *string
	InsuranceCompany *string
	PolicyNumber     *string
	ClaimNumber      *string
	Deductible       *string
	AdjusterName     *string
	AdjusterPhone    *string
	AdjusterEmail    *string

	InternalNotes *string
	ScopeSummary  *string
}

// UpdateJob updates a job. Switching the property type clears the field
// group that no longer applies before the new group's values land.
func (s *JobService) UpdateJob(ctx context.Context, input *UpdateJobInput) (*entity.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}

	if input.PropertyType != nil {
		newType := enum.NormalizePropertyType(*input.PropertyType)
		if newType != job.PropertyType {
			if newType.IsCommercial() {
				job.ClearResidentialFields()
			} else {
				job.ClearCommercialFields()
			}
			job.PropertyType = newType
		}
	}

	if input.LossType != nil {
		job.LossType = *input.LossType
	}
	if input.LossCause != nil {
		job.LossCause = input.LossCause
	}
	if input.LossCategory != nil {
		job.LossCategory = input.LossCategory
	}
	if input.LossClass != nil {
		job.LossClass = input.LossClass
	}
	if input.DateOfLoss != nil {
		job.DateOfLoss = input.DateOfLoss
	}

	if input.SquareFootage != nil {
		job.SquareFootage = input.SquareFootage
	}
	if input.YearBuilt != nil {
		job.YearBuilt = input.YearBuilt
	}
	if input.PowerOn != nil {
		job.PowerOn = *input.PowerOn
	}

	if job.PropertyType.IsCommercial() {
		if input.UnitsAffected != nil {
			job.UnitsAffected = input.UnitsAffected
		}
		if input.FloorsAffected != nil {
			job.FloorsAffected = input.FloorsAffected
		}
		if input.ParkingLocation != nil {
			job.ParkingLocation = input.ParkingLocation
		}
		if input.MSAOnFile != nil {
			job.MSAOnFile = *input.MSAOnFile
		}
	} else {
		if input.RoomsAffected != nil {
			job.RoomsAffected = input.RoomsAffected
		}
		if input.FoundationType != nil {
			job.FoundationType = input.FoundationType
		}
		if input.BasementType != nil {
			job.BasementType = input.BasementType
		}
	}

	if input.PaymentMethod != nil {
		job.PaymentMethod = input.PaymentMethod
	}
	if input.InsuranceCompany != nil {
		job.InsuranceCompany = input.InsuranceCompany
	}
	if input.PolicyNumber != nil {
		job.PolicyNumber = input.PolicyNumber
	}
	if input.ClaimNumber != nil {
		job.ClaimNumber = input.ClaimNumber
	}
	if input.Deductible != nil {
		job.Deductible = input.Deductible
	}
	if input.AdjusterName != nil {
		job.AdjusterName = input.AdjusterName
	}
	if input.AdjusterPhone != nil {
		job.AdjusterPhone = input.AdjusterPhone
	}
	if input.AdjusterEmail != nil {
		job.AdjusterEmail = input.AdjusterEmail
	}

	if input.InternalNotes != nil {
		job.InternalNotes = *input.InternalNotes
	}
	if input.ScopeSummary != nil {
		job.ScopeSummary = input.ScopeSummary
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateJobStatus transitions a job to a new status
func (s *JobService) UpdateJobStatus(ctx context.Context, id uuid.UUID, status enum.JobStatus) (*entity.Job, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "invalid job status"}})
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}

	job.Status = status
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob soft-deletes a job
func (s *JobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return apperror.NewNotFoundError("Job")
	}

	return s.jobRepo.Delete(ctx, id)
}
