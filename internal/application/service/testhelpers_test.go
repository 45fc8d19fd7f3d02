package service

import (
	"testing"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	"github.com/fieldserve/restoration-api/internal/infrastructure/database"
	infraRepo "github.com/fieldserve/restoration-api/internal/infrastructure/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Property{},
		&entity.StormEvent{},
		&entity.Job{},
		&entity.JobSequence{},
		&entity.PropertySequence{},
	))

	return db
}

func newTestIntakeService(t *testing.T, db *gorm.DB, log *zap.Logger) *IntakeService {
	t.Helper()

	if log == nil {
		log = zaptest.NewLogger(t)
	}

	customerRepo := infraRepo.NewCustomerRepository(db)
	propertyRepo := infraRepo.NewPropertyRepository(db)
	jobRepo := infraRepo.NewJobRepository(db)
	sequenceRepo := infraRepo.NewSequenceRepository(db)

	numbers := NewJobNumberService(sequenceRepo, log)
	composer := NewJobComposer(database.FullCapabilities(), log)

	return NewIntakeService(customerRepo, propertyRepo, jobRepo, numbers, composer, log)
}
