package service

import (
	"context"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/pkg/pagination"
)

// DashboardStats aggregates the intake board counters
type DashboardStats struct {
	TotalJobs      int64            `json:"total_jobs"`
	TotalCustomers int64            `json:"total_customers"`
	JobsLast30Days int64            `json:"jobs_last_30_days"`
	JobsByStatus   map[string]int64 `json:"jobs_by_status"`
	JobsByDivision map[string]int64 `json:"jobs_by_division"`
}

// DashboardService assembles aggregate stats for the intake dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	jobRepo       repository.JobRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, jobRepo repository.JobRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo, jobRepo: jobRepo}
}

// GetStats returns totals and per-status/per-division job counts
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalJobs, err := s.analyticsRepo.GetTotalJobs(ctx)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.analyticsRepo.GetTotalCustomers(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.analyticsRepo.GetJobsCreatedSince(ctx, 30)
	if err != nil {
		return nil, err
	}

	statusCounts, err := s.analyticsRepo.GetJobCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	divisionCounts, err := s.analyticsRepo.GetJobCountsByDivision(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalJobs:      totalJobs,
		TotalCustomers: totalCustomers,
		JobsLast30Days: recent,
		JobsByStatus:   make(map[string]int64, len(statusCounts)),
		JobsByDivision: make(map[string]int64, len(divisionCounts)),
	}
	for _, sc := range statusCounts {
		stats.JobsByStatus[sc.Status] = sc.Count
	}
	for _, dc := range divisionCounts {
		stats.JobsByDivision[dc.Division] = dc.Count
	}

	return stats, nil
}

// GetRecentJobs returns the most recently created jobs for the dashboard feed
func (s *DashboardService) GetRecentJobs(ctx context.Context, limit int) ([]entity.Job, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	params := &repository.JobFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: limit},
	}
	jobs, _, err := s.jobRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
