package repository

import (
	"context"
	"errors"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	domainRepo "github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) domainRepo.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Property").
		Preload("StormEvent").
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) GetByJobNumber(ctx context.Context, jobNumber string) (*entity.Job, error) {
	var job entity.Job
	err := r.db.WithContext(ctx).First(&job, "job_number = ?", jobNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &job, err
}

func (r *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Job{}, "id = ?", id).Error
}

func (r *jobRepository) List(ctx context.Context, params *domainRepo.JobFilterParams) ([]entity.Job, int64, error) {
	var jobs []entity.Job
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Job{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Division != "" {
		query = query.Where("division = ?", params.Division)
	}
	if params.StormEventID != nil {
		query = query.Where("storm_event_id = ?", *params.StormEventID)
	}
	if params.Search != "" {
		query = query.Where("job_number LIKE ? OR loss_type LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := params.Pagination
	if p == nil {
		p = pagination.DefaultPagination()
	}
	p.Validate()
	err := query.Offset(p.Offset()).Limit(p.PerPage).
		Preload("Customer").
		Preload("Property").
		Order("created_at DESC").
		Find(&jobs).Error

	return jobs, total, err
}

type stormEventRepository struct {
	db *gorm.DB
}

// NewStormEventRepository creates a new storm event repository
func NewStormEventRepository(db *gorm.DB) domainRepo.StormEventRepository {
	return &stormEventRepository{db: db}
}

func (r *stormEventRepository) Create(ctx context.Context, event *entity.StormEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *stormEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StormEvent, error) {
	var event entity.StormEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

func (r *stormEventRepository) Update(ctx context.Context, event *entity.StormEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *stormEventRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.StormEvent, int64, error) {
	var events []entity.StormEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StormEvent{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("event_date DESC").
		Find(&events).Error

	return events, total, err
}
