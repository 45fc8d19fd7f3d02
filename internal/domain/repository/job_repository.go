package repository

import (
	"context"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/google/uuid"
)

// JobFilterParams holds filters for listing jobs
type JobFilterParams struct {
	Status       enum.JobStatus
	Division     enum.Division
	StormEventID *uuid.UUID
	Search       string
	Pagination   *pagination.PaginationParams
}

// JobRepository defines the interface for job data operations
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	// GetWithRelations loads the job with its customer, property and
	// storm event for the intake success payload.
	GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *JobFilterParams) ([]entity.Job, int64, error)
}

// StormEventRepository defines the interface for storm event operations
type StormEventRepository interface {
	Create(ctx context.Context, event *entity.StormEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StormEvent, error)
	Update(ctx context.Context, event *entity.StormEvent) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.StormEvent, int64, error)
}
