package in

import (
	"context"

	"partshub/internal/modules/catalog/dto"
	catalogin "partshub/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SearchArticle(ctx context.Context, article, availability, sortBy string) ([]dto.PartOutput, error) {
	return h.usecase.SearchArticle(ctx, dto.ArticleSearchInput{
		Article:      article,
		Availability: availability,
		SortBy:       sortBy,
	})
}

func (h CLIHandler) SearchVIN(ctx context.Context, vin, partName string) (dto.VINSearchOutput, error) {
	return h.usecase.SearchVIN(ctx, dto.VINSearchInput{VIN: vin, PartName: partName})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.HistoryOutput, error) {
	return h.usecase.RecentSearches(ctx, limit)
}
