package out

import (
	"context"

	"partshub/internal/modules/catalog/domain"
	"partshub/internal/modules/catalog/dto"
)

// SearchAPI queries the backend's supplier aggregation.
type SearchAPI interface {
	SearchArticle(ctx context.Context, telegramID int64, in dto.ArticleSearchInput) ([]domain.Part, error)
	SearchVINOEM(ctx context.Context, telegramID int64, vin, partName string) (domain.VINResult, error)
}

// HistoryStore keeps recent searches on the device for quick re-runs.
type HistoryStore interface {
	Record(ctx context.Context, entry domain.HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}
