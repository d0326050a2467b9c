package persona

import (
	"context"

	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/utils/platformerrors"
)

// Store reads persona segment rows from the analytical warehouse.
type Store interface {
	// FetchSegments returns up to limit segment rows in warehouse order.
	FetchSegments(ctx context.Context, limit int) ([]SegmentRow, error)
}

// Service exposes the persona segment projection in columnar form.
type Service struct {
	store  Store
	limit  int
	logger zerolog.Logger
}

// NewService creates the persona segment service.
func NewService(store Store, limit int, logger zerolog.Logger) *Service {
	if limit <= 0 {
		limit = 30
	}
	return &Service{
		store:  store,
		limit:  limit,
		logger: logger.With().Str("component", "persona_service").Logger(),
	}
}

// Segments returns the projection pivoted column-wise: each key is a column
// name and each value holds that column's cells in row order. Zero rows yield
// empty slices, not a missing key.
func (s *Service) Segments(ctx context.Context) (map[string][]string, error) {
	rows, err := s.store.FetchSegments(ctx, s.limit)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "failed to read persona segments", err, "")
	}

	ages := make([]string, 0, len(rows))
	descriptions := make([]string, 0, len(rows))
	for _, row := range rows {
		ages = append(ages, row.AgeGroupProfile)
		descriptions = append(descriptions, row.SegmentDescription)
	}

	s.logger.Debug().Int("rows", len(rows)).Msg("persona segments fetched")
	return map[string][]string{
		ColumnAgeGroupProfile:    ages,
		ColumnSegmentDescription: descriptions,
	}, nil
}
