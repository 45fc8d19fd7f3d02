package repository

import (
	"context"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	domainRepo "github.com/fieldserve/restoration-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetJobCountsByStatus(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetJobCountsByDivision(ctx context.Context) ([]domainRepo.DivisionCountResult, error) {
	var results []domainRepo.DivisionCountResult
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Select("division, COUNT(*) as count").
		Group("division").
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetTotalCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetTotalJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Job{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetJobsCreatedSince(ctx context.Context, days int) (int64, error) {
	var count int64
	since := time.Now().AddDate(0, 0, -days)
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
