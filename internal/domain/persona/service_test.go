package persona

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"adcraft/creative-api/internal/utils/platformerrors"
)

type stubStore struct {
	rows  []SegmentRow
	err   error
	limit int
}

func (s *stubStore) FetchSegments(_ context.Context, limit int) ([]SegmentRow, error) {
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func TestSegmentsColumnarProjection(t *testing.T) {
	store := &stubStore{rows: []SegmentRow{
		{AgeGroupProfile: "18-24", SegmentDescription: "students and first jobbers"},
		{AgeGroupProfile: "25-34", SegmentDescription: "young professionals"},
		{AgeGroupProfile: "35-44", SegmentDescription: "established families"},
	}}
	svc := NewService(store, 30, zerolog.Nop())

	got, err := svc.Segments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 columns, got %d: %v", len(got), got)
	}
	wantAges := []string{"18-24", "25-34", "35-44"}
	if !reflect.DeepEqual(got[ColumnAgeGroupProfile], wantAges) {
		t.Errorf("age column = %v, want %v", got[ColumnAgeGroupProfile], wantAges)
	}
	wantDescs := []string{"students and first jobbers", "young professionals", "established families"}
	if !reflect.DeepEqual(got[ColumnSegmentDescription], wantDescs) {
		t.Errorf("description column = %v, want %v", got[ColumnSegmentDescription], wantDescs)
	}
	if store.limit != 30 {
		t.Errorf("expected row limit 30, got %d", store.limit)
	}
}

func TestSegmentsEmptyWarehouse(t *testing.T) {
	svc := NewService(&stubStore{}, 30, zerolog.Nop())

	got, err := svc.Segments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[ColumnAgeGroupProfile]) != 0 || len(got[ColumnSegmentDescription]) != 0 {
		t.Errorf("expected empty columns, got %v", got)
	}
}

func TestSegmentsStoreFailure(t *testing.T) {
	svc := NewService(&stubStore{err: errors.New("dataset not found")}, 30, zerolog.Nop())

	_, err := svc.Segments(context.Background())
	if err == nil {
		t.Fatal("expected error from store failure")
	}
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) || perr.GetErrorType() != platformerrors.ErrorTypeExternal {
		t.Errorf("expected external error type, got %v", err)
	}
}
