package repository

import (
	"context"
)

// StatusCountResult represents job counts grouped by status
type StatusCountResult struct {
	Status string
	Count  int64
}

// DivisionCountResult represents job counts grouped by division
type DivisionCountResult struct {
	Division string
	Count    int64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetJobCountsByStatus returns job counts grouped by status
	GetJobCountsByStatus(ctx context.Context) ([]StatusCountResult, error)

	// GetJobCountsByDivision returns job counts grouped by division
	GetJobCountsByDivision(ctx context.Context) ([]DivisionCountResult, error)

	// GetTotalCustomers returns the total customer count
	GetTotalCustomers(ctx context.Context) (int64, error)

	// GetTotalJobs returns the total job count
	GetTotalJobs(ctx context.Context) (int64, error)

	// GetJobsCreatedSince returns how many jobs were created in the last N days
	GetJobsCreatedSince(ctx context.Context, days int) (int64, error)
}
