package service

import (
	"context"

	"go.uber.org/zap"

	"partshub/internal/modules/catalog/domain"
	"partshub/internal/modules/catalog/dto"
	catalogout "partshub/internal/modules/catalog/port/out"
	"partshub/internal/platform/clock"
)

// Searcher validates queries, forwards them to the backend and records
// local history. History failures never fail a search.
type Searcher struct {
	api        catalogout.SearchAPI
	history    catalogout.HistoryStore
	telegramID int64
	clock      clock.Clock
	log        *zap.Logger
}

func NewSearcher(api catalogout.SearchAPI, history catalogout.HistoryStore, telegramID int64, clk clock.Clock, log *zap.Logger) *Searcher {
	return &Searcher{api: api, history: history, telegramID: telegramID, clock: clk, log: log}
}

func (s *Searcher) SearchArticle(ctx context.Context, in dto.ArticleSearchInput) ([]domain.Part, error) {
	if err := domain.ValidateArticle(in.Article); err != nil {
		return nil, err
	}
	parts, err := s.api.SearchArticle(ctx, s.telegramID, in)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.HistoryEntry{
		Query:   in.Article,
		Kind:    domain.SearchByArticle,
		Results: len(parts),
		At:      s.clock.Now(),
	})
	return parts, nil
}

func (s *Searcher) SearchVIN(ctx context.Context, in dto.VINSearchInput) (domain.VINResult, error) {
	vin, err := domain.NormalizeVIN(in.VIN)
	if err != nil {
		return domain.VINResult{}, err
	}
	if err := domain.ValidateArticle(in.PartName); err != nil {
		return domain.VINResult{}, err
	}
	result, err := s.api.SearchVINOEM(ctx, s.telegramID, vin, in.PartName)
	if err != nil {
		return domain.VINResult{}, err
	}
	s.record(ctx, domain.HistoryEntry{
		Query:   vin + " " + in.PartName,
		Kind:    domain.SearchByVIN,
		Results: len(result.Parts),
		At:      s.clock.Now(),
	})
	return result, nil
}

func (s *Searcher) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, limit)
}

func (s *Searcher) record(ctx context.Context, entry domain.HistoryEntry) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, entry); err != nil {
		s.log.Warn("search history write failed", zap.Error(err))
	}
}
