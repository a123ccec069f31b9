package usecase

import (
	"context"

	"partshub/internal/modules/catalog/domain"
	"partshub/internal/modules/catalog/dto"
	"partshub/internal/modules/catalog/service"
)

type Interactor struct {
	searcher *service.Searcher
}

func New(searcher *service.Searcher) *Interactor {
	return &Interactor{searcher: searcher}
}

func (i *Interactor) SearchArticle(ctx context.Context, in dto.ArticleSearchInput) ([]dto.PartOutput, error) {
	parts, err := i.searcher.SearchArticle(ctx, in)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartOutput, 0, len(parts))
	for _, p := range parts {
		out = append(out, partOutput(p))
	}
	return out, nil
}

func (i *Interactor) SearchVIN(ctx context.Context, in dto.VINSearchInput) (dto.VINSearchOutput, error) {
	result, err := i.searcher.SearchVIN(ctx, in)
	if err != nil {
		return dto.VINSearchOutput{}, err
	}
	out := dto.VINSearchOutput{
		VIN:          result.VIN,
		VehicleBrand: result.Vehicle.Brand,
		VehicleName:  result.Vehicle.Name,
		Parts:        make([]dto.OEMPartOutput, 0, len(result.Parts)),
	}
	for _, p := range result.Parts {
		out.Parts = append(out.Parts, dto.OEMPartOutput{Article: p.Article, Name: p.Name, Source: p.Source})
	}
	return out, nil
}

func (i *Interactor) RecentSearches(ctx context.Context, limit int) ([]dto.HistoryOutput, error) {
	entries, err := i.searcher.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.HistoryOutput{
			Query:   entry.Query,
			Kind:    string(entry.Kind),
			Results: entry.Results,
			At:      entry.At,
		})
	}
	return out, nil
}

func partOutput(p domain.Part) dto.PartOutput {
	return dto.PartOutput{
		Article:      p.Article,
		Brand:        p.Brand,
		Description:  p.Description,
		Supplier:     p.Supplier,
		Price:        p.Price,
		DeliveryDays: p.DeliveryDays,
		InStock:      p.InStock,
	}
}
