package service

import (
	"context"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/pkg/apperror"
	"github.com/fieldserve/restoration-api/pkg/pagination"
	"github.com/google/uuid"
)

// StormService handles storm event operations
type StormService struct {
	stormRepo repository.StormEventRepository
	jobRepo   repository.JobRepository
}

// NewStormService creates a new storm service
func NewStormService(stormRepo repository.StormEventRepository, jobRepo repository.JobRepository) *StormService {
	return &StormService{stormRepo: stormRepo, jobRepo: jobRepo}
}

// CreateStormEventInput represents the create storm event input
type CreateStormEventInput struct {
	Name      string
	EventDate time.Time
	Region    string
}

// CreateStormEvent creates a new storm event
func (s *StormService) CreateStormEvent(ctx context.Context, input *CreateStormEventInput) (*entity.StormEvent, error) {
	event := &entity.StormEvent{
		Name:      input.Name,
		EventDate: input.EventDate,
		Region:    input.Region,
		Status:    "active",
	}

	if err := s.stormRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetStormEvent retrieves a storm event by ID
func (s *StormService) GetStormEvent(ctx context.Context, id uuid.UUID) (*entity.StormEvent, error) {
	event, err := s.stormRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Storm event")
	}
	return event, nil
}

// ListStormEvents lists storm events with pagination
func (s *StormService) ListStormEvents(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StormEvent], error) {
	events, total, err := s.stormRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}

// UpdateStormEventInput represents the update storm event input
type UpdateStormEventInput struct {
	ID        uuid.UUID
	Name      *string
	EventDate *time.Time
	Region    *string
	Status    *string
}

// UpdateStormEvent updates a storm event
func (s *StormService) UpdateStormEvent(ctx context.Context, input *UpdateStormEventInput) (*entity.StormEvent, error) {
	event, err := s.stormRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Storm event")
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.Region != nil {
		event.Region = *input.Region
	}
	if input.Status != nil {
		event.Status = *input.Status
	}

	if err := s.stormRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// ListStormJobs lists the jobs recorded under a storm event
func (s *StormService) ListStormJobs(ctx context.Context, stormEventID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Job], error) {
	event, err := s.stormRepo.GetByID(ctx, stormEventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Storm event")
	}

	filter := &repository.JobFilterParams{
		StormEventID: &stormEventID,
		Pagination:   params,
	}
	jobs, total, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(jobs, pag), nil
}
