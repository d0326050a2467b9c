package warehouse

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	"adcraft/creative-api/internal/config"
	"adcraft/creative-api/internal/domain/persona"
	"adcraft/creative-api/internal/infrastructure/metrics"
)

// BigQueryStore reads persona segments from the analytical warehouse. The
// client is created on first use so a missing dataset or project identity
// fails the request, not process startup.
type BigQueryStore struct {
	cfg    *config.Config
	logger zerolog.Logger

	mu     sync.Mutex
	client *bigquery.Client
}

// NewBigQueryStore creates the warehouse backed persona store.
func NewBigQueryStore(cfg *config.Config, logger zerolog.Logger) *BigQueryStore {
	return &BigQueryStore{
		cfg:    cfg,
		logger: logger.With().Str("component", "bigquery_store").Logger(),
	}
}

func (s *BigQueryStore) get(ctx context.Context) (*bigquery.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}

	client, err := bigquery.NewClient(ctx, s.cfg.GCPProjectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	s.client = client
	return client, nil
}

// FetchSegments implements persona.Store.
func (s *BigQueryStore) FetchSegments(ctx context.Context, limit int) ([]persona.SegmentRow, error) {
	client, err := s.get(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 30
	}
	// limit comes from config, never from user input.
	query := client.Query(fmt.Sprintf(
		"SELECT %s, %s FROM `%s.%s.%s` LIMIT %d",
		persona.ColumnAgeGroupProfile,
		persona.ColumnSegmentDescription,
		s.cfg.GCPProjectID,
		s.cfg.BigQueryDataset,
		s.cfg.BigQueryPersonaTable,
		limit,
	))

	start := time.Now()
	it, err := query.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query persona segments: %w", err)
	}

	rows := make([]persona.SegmentRow, 0, limit)
	for {
		var values []bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate persona segments: %w", err)
		}
		rows = append(rows, persona.SegmentRow{
			AgeGroupProfile:    bqString(values, 0),
			SegmentDescription: bqString(values, 1),
		})
	}
	metrics.RecordWarehouseQuery(time.Since(start).Seconds())

	s.logger.Debug().Int("rows", len(rows)).Dur("duration", time.Since(start)).Msg("persona query completed")
	return rows, nil
}

// bqString reads a cell as a string, tolerating NULLs and non-string columns.
func bqString(values []bigquery.Value, idx int) string {
	if idx >= len(values) || values[idx] == nil {
		return ""
	}
	if s, ok := values[idx].(string); ok {
		return s
	}
	return fmt.Sprint(values[idx])
}
