package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"partshub/internal/modules/catalog/domain"
	"partshub/internal/modules/catalog/dto"
	"partshub/internal/platform/clock"
	apperrors "partshub/internal/platform/errors"
)

type fakeSearchAPI struct {
	parts   []domain.Part
	vinRes  domain.VINResult
	err     error
	lastVIN string
}

func (a *fakeSearchAPI) SearchArticle(_ context.Context, _ int64, _ dto.ArticleSearchInput) ([]domain.Part, error) {
	return a.parts, a.err
}

func (a *fakeSearchAPI) SearchVINOEM(_ context.Context, _ int64, vin, _ string) (domain.VINResult, error) {
	a.lastVIN = vin
	return a.vinRes, a.err
}

type memHistory struct {
	entries []domain.HistoryEntry
	err     error
}

func (h *memHistory) Record(_ context.Context, entry domain.HistoryEntry) error {
	if h.err != nil {
		return h.err
	}
	h.entries = append(h.entries, entry)
	return nil
}

func (h *memHistory) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit > len(h.entries) {
		limit = len(h.entries)
	}
	return h.entries[:limit], nil
}

func newSearcher(api *fakeSearchAPI, history *memHistory) *Searcher {
	return NewSearcher(api, history, 42, clock.Fixed{T: time.Unix(1700000000, 0)}, zap.NewNop())
}

func TestSearchArticleRejectsEmptyQuery(t *testing.T) {
	s := newSearcher(&fakeSearchAPI{}, &memHistory{})
	if _, err := s.SearchArticle(context.Background(), dto.ArticleSearchInput{Article: "  "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestSearchArticleRecordsHistory(t *testing.T) {
	api := &fakeSearchAPI{parts: []domain.Part{{Article: "P85020"}, {Article: "P85020", Supplier: "emex"}}}
	history := &memHistory{}
	s := newSearcher(api, history)

	parts, err := s.SearchArticle(context.Background(), dto.ArticleSearchInput{Article: "P85020"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("parts = %d", len(parts))
	}
	if len(history.entries) != 1 || history.entries[0].Results != 2 || history.entries[0].Kind != domain.SearchByArticle {
		t.Fatalf("history = %+v", history.entries)
	}
}

func TestHistoryFailureDoesNotFailSearch(t *testing.T) {
	api := &fakeSearchAPI{parts: []domain.Part{{Article: "P85020"}}}
	s := newSearcher(api, &memHistory{err: errors.New("disk full")})

	if _, err := s.SearchArticle(context.Background(), dto.ArticleSearchInput{Article: "P85020"}); err != nil {
		t.Fatalf("search must survive history failure, got %v", err)
	}
}

func TestSearchVINNormalizesBeforeCalling(t *testing.T) {
	api := &fakeSearchAPI{vinRes: domain.VINResult{VIN: "WAUZZZ8K9DA123456"}}
	s := newSearcher(api, &memHistory{})

	_, err := s.SearchVIN(context.Background(), dto.VINSearchInput{VIN: " wauzzz8k9da123456 ", PartName: "brake pads"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if api.lastVIN != "WAUZZZ8K9DA123456" {
		t.Fatalf("vin sent = %q", api.lastVIN)
	}
}

func TestSearchVINRejectsShortVIN(t *testing.T) {
	s := newSearcher(&fakeSearchAPI{}, &memHistory{})
	_, err := s.SearchVIN(context.Background(), dto.VINSearchInput{VIN: "TOO-SHORT", PartName: "brake pads"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestSearchVINRequiresPartName(t *testing.T) {
	s := newSearcher(&fakeSearchAPI{}, &memHistory{})
	_, err := s.SearchVIN(context.Background(), dto.VINSearchInput{VIN: "WAUZZZ8K9DA123456"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}
