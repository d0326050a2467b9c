package genlog

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"adcraft/creative-api/internal/domain/creative"
	"adcraft/creative-api/internal/infrastructure/database/entities"
)

// Repository persists generation batch outcomes. Write failures are logged
// and swallowed so audit logging never fails a generation request.
type Repository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewRepository(db *gorm.DB, logger zerolog.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger.With().Str("component", "genlog_repository").Logger(),
	}
}

// Record implements creative.Recorder.
func (r *Repository) Record(ctx context.Context, outcome creative.BatchOutcome) {
	entity := entities.GenerationRecord{
		ID:             uuid.NewString(),
		RequestID:      outcome.RequestID,
		Product:        outcome.Product,
		Persona:        outcome.Persona,
		Variations:     outcome.Variations,
		TextFailures:   outcome.TextFailures,
		ImageFailures:  outcome.ImageFailures,
		DurationMillis: outcome.Duration.Milliseconds(),
		Status:         outcome.Status,
	}
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		r.logger.Error().Err(err).Str("request_id", outcome.RequestID).Msg("failed to persist generation record")
	}
}

// Recent returns the latest generation records, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]entities.GenerationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []entities.GenerationRecord
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
