package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/fieldserve/restoration-api/internal/domain/enum"
	infraRepo "github.com/fieldserve/restoration-api/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// brokenSequenceRepo simulates an unreachable counter store
type brokenSequenceRepo struct {
	jobCount int64
}

func (r *brokenSequenceRepo) NextJobSeq(ctx context.Context, year int, divisionCode string) (int, error) {
	return 0, errors.New("connection refused")
}

func (r *brokenSequenceRepo) NextPropertySeq(ctx context.Context, stormEventID uuid.UUID) (int, error) {
	return 0, errors.New("connection refused")
}

func (r *brokenSequenceRepo) CountJobsForStorm(ctx context.Context, stormEventID uuid.UUID) (int64, error) {
	return r.jobCount, nil
}

func TestAllocateJobNumberSequence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobNumberService(infraRepo.NewSequenceRepository(db), zaptest.NewLogger(t))

	yy := time.Now().Year() % 100

	first := svc.AllocateJobNumber(context.Background(), enum.DivisionMitigation)
	second := svc.AllocateJobNumber(context.Background(), enum.DivisionMitigation)
	third := svc.AllocateJobNumber(context.Background(), enum.DivisionMitigation)

	assert.Equal(t, fmt.Sprintf("%02d-MIT-0001", yy), first)
	assert.Equal(t, fmt.Sprintf("%02d-MIT-0002", yy), second)
	assert.Equal(t, fmt.Sprintf("%02d-MIT-0003", yy), third)
}

func TestAllocateJobNumberScopesPerDivision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobNumberService(infraRepo.NewSequenceRepository(db), zaptest.NewLogger(t))

	yy := time.Now().Year() % 100

	mit := svc.AllocateJobNumber(context.Background(), enum.DivisionMitigation)
	recon := svc.AllocateJobNumber(context.Background(), enum.DivisionRecon)
	nashville := svc.AllocateJobNumber(context.Background(), enum.DivisionNashville)

	// Each division starts its own sequence at 1
	assert.Equal(t, fmt.Sprintf("%02d-MIT-0001", yy), mit)
	assert.Equal(t, fmt.Sprintf("%02d-REC-0001", yy), recon)
	assert.Equal(t, fmt.Sprintf("%02d-HBN-0001", yy), nashville)
}

func TestAllocateJobNumberUnknownDivisionUsesGenericCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobNumberService(infraRepo.NewSequenceRepository(db), zaptest.NewLogger(t))

	got := svc.AllocateJobNumber(context.Background(), enum.Division("Franchise Ops"))

	assert.Regexp(t, regexp.MustCompile(`^\d{2}-GEN-0001$`), got)
}

func TestAllocateJobNumberFallbackKeepsFormat(t *testing.T) {
	svc := NewJobNumberService(&brokenSequenceRepo{}, zaptest.NewLogger(t))

	got := svc.AllocateJobNumber(context.Background(), enum.DivisionMitigation)

	// Degraded number still matches the YY-CODE-NNNN shape
	assert.Regexp(t, regexp.MustCompile(`^\d{2}-MIT-\d{4}$`), got)
}

func TestAllocatePropertyReferenceSequence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJobNumberService(infraRepo.NewSequenceRepository(db), zaptest.NewLogger(t))

	stormA := uuid.New()
	stormB := uuid.New()

	require.Equal(t, "PROP-0001", svc.AllocatePropertyReference(context.Background(), stormA))
	require.Equal(t, "PROP-0002", svc.AllocatePropertyReference(context.Background(), stormA))

	// A different storm event gets its own sequence
	require.Equal(t, "PROP-0001", svc.AllocatePropertyReference(context.Background(), stormB))
}

func TestAllocatePropertyReferenceFallbackUsesJobCount(t *testing.T) {
	svc := NewJobNumberService(&brokenSequenceRepo{jobCount: 7}, zaptest.NewLogger(t))

	got := svc.AllocatePropertyReference(context.Background(), uuid.New())

	assert.Equal(t, "PROP-0008", got)
}
