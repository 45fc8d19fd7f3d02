package repository

import (
	"context"

	"github.com/fieldserve/restoration-api/internal/domain/entity"
	domainRepo "github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// NextJobSeq increments and reads the (year, division) counter in one
// transaction. The upsert takes a row lock, so two concurrent intakes for
// the same scope serialize and can never be handed the same value.
func (r *sequenceRepository) NextJobSeq(ctx context.Context, year int, divisionCode string) (int, error) {
	var seq int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := entity.JobSequence{Year: year, DivisionCode: divisionCode, NextSeq: 2}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "division_code"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"next_seq": gorm.Expr("next_seq + 1")}),
		}).Create(&row).Error; err != nil {
			return err
		}

		var current entity.JobSequence
		if err := tx.Where("year = ? AND division_code = ?", year, divisionCode).
			First(&current).Error; err != nil {
			return err
		}
		seq = current.NextSeq - 1
		return nil
	})
	return seq, err
}

// NextPropertySeq does the same for the per-storm-event scope.
func (r *sequenceRepository) NextPropertySeq(ctx context.Context, stormEventID uuid.UUID) (int, error) {
	var seq int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := entity.PropertySequence{StormEventID: stormEventID, NextSeq: 2}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storm_event_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"next_seq": gorm.Expr("next_seq + 1")}),
		}).Create(&row).Error; err != nil {
			return err
		}

		var current entity.PropertySequence
		if err := tx.Where("storm_event_id = ?", stormEventID).
			First(&current).Error; err != nil {
			return err
		}
		seq = current.NextSeq - 1
		return nil
	})
	return seq, err
}

func (r *sequenceRepository) CountJobsForStorm(ctx context.Context, stormEventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Where("storm_event_id = ?", stormEventID).
		Count(&count).Error
	return count, err
}
