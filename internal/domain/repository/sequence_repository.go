package repository

import (
	"context"

	"github.com/google/uuid"
)

// SequenceRepository hands out sequential identifiers. Both counters
// increment-and-read inside a single transaction so concurrent intakes
// cannot receive the same value.
type SequenceRepository interface {
	// NextJobSeq returns the next sequence value for the (year, division
	// code) scope, starting at 1 for a fresh scope.
	NextJobSeq(ctx context.Context, year int, divisionCode string) (int, error)
	// NextPropertySeq returns the next sequence value for a storm event.
	NextPropertySeq(ctx context.Context, stormEventID uuid.UUID) (int, error)
	// CountJobsForStorm returns how many jobs exist under a storm event.
	// Backs the degraded property-reference fallback.
	CountJobsForStorm(ctx context.Context, stormEventID uuid.UUID) (int64, error)
}
