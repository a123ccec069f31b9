package in

import (
	"context"

	"partshub/internal/modules/catalog/dto"
)

type Usecase interface {
	SearchArticle(ctx context.Context, in dto.ArticleSearchInput) ([]dto.PartOutput, error)
	SearchVIN(ctx context.Context, in dto.VINSearchInput) (dto.VINSearchOutput, error)
	RecentSearches(ctx context.Context, limit int) ([]dto.HistoryOutput, error)
}
