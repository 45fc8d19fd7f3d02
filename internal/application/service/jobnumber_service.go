package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/enum"
	"github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobNumberService allocates the human-readable identifiers attached to
// jobs. The primary path goes through the database counter; when that
// call fails the service degrades to a timestamp-derived number so the
// operator is not blocked. The degraded number is NOT collision-free:
// two submissions inside the same millisecond-truncation window can
// collide. Accepted risk, logged as a warning when taken.
type JobNumberService struct {
	seqRepo repository.SequenceRepository
	logger  *zap.Logger
}

// NewJobNumberService creates a new job number service
func NewJobNumberService(seqRepo repository.SequenceRepository, logger *zap.Logger) *JobNumberService {
	return &JobNumberService{seqRepo: seqRepo, logger: logger}
}

// AllocateJobNumber returns the next job number for the division, formatted
// YY-CODE-NNNN. The sequence is scoped by (current year, division code) and
// 1-indexed within each scope. A single counter error triggers the fallback
// immediately; there are no retries on the primary path.
func (s *JobNumberService) AllocateJobNumber(ctx context.Context, division enum.Division) string {
	year := time.Now().Year()
	code := division.Code()

	seq, err := s.seqRepo.NextJobSeq(ctx, year, code)
	if err != nil {
		s.logger.Warn("job number counter unavailable, using degraded fallback",
			zap.String("division", string(division)),
			zap.Error(err))
		return s.fallbackJobNumber(year, code)
	}

	return fmt.Sprintf("%02d-%s-%04d", year%100, code, seq)
}

// fallbackJobNumber synthesizes a number from the last 4 digits of the
// current epoch millis
func (s *JobNumberService) fallbackJobNumber(year int, code string) string {
	suffix := time.Now().UnixMilli() % 10000
	return fmt.Sprintf("%02d-%s-%04d", year%100, code, suffix)
}

// AllocatePropertyReference returns the next property reference for a storm
// event, formatted PROP-NNNN. The sequence is scoped per storm event,
// independent of the job-number scope. On counter failure it degrades to a
// zero-padded count of the event's existing jobs.
func (s *JobNumberService) AllocatePropertyReference(ctx context.Context, stormEventID uuid.UUID) string {
	seq, err := s.seqRepo.NextPropertySeq(ctx, stormEventID)
	if err != nil {
		s.logger.Warn("property reference counter unavailable, using count-based fallback",
			zap.String("storm_event_id", stormEventID.String()),
			zap.Error(err))
		count, countErr := s.seqRepo.CountJobsForStorm(ctx, stormEventID)
		if countErr != nil {
			count = 0
		}
		return fmt.Sprintf("PROP-%04d", count+1)
	}

	return fmt.Sprintf("PROP-%04d", seq)
}
