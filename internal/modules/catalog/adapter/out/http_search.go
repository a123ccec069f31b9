package out

import (
	"context"

	"partshub/internal/modules/catalog/domain"
	"partshub/internal/modules/catalog/dto"
	"partshub/internal/platform/rest"
)

// SearchClient calls the backend's supplier aggregation endpoints.
type SearchClient struct {
	api *rest.Client
}

func NewSearchClient(api *rest.Client) *SearchClient {
	return &SearchClient{api: api}
}

type articleRequest struct {
	Article            string `json:"article"`
	TelegramID         int64  `json:"telegram_id"`
	AvailabilityFilter string `json:"availability_filter,omitempty"`
	SortBy             string `json:"sort_by,omitempty"`
}

type wirePart struct {
	Article      string  `json:"article"`
	Brand        string  `json:"brand"`
	Description  string  `json:"description"`
	Supplier     string  `json:"supplier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
	InStock      bool    `json:"in_stock"`
}

type articleResponse struct {
	Results []wirePart `json:"results"`
}

func (c *SearchClient) SearchArticle(ctx context.Context, telegramID int64, in dto.ArticleSearchInput) ([]domain.Part, error) {
	req := articleRequest{
		Article:            in.Article,
		TelegramID:         telegramID,
		AvailabilityFilter: in.Availability,
		SortBy:             in.SortBy,
	}
	var resp articleResponse
	if err := c.api.Post(ctx, "/search/article", req, &resp); err != nil {
		return nil, err
	}
	parts := make([]domain.Part, 0, len(resp.Results))
	for _, p := range resp.Results {
		parts = append(parts, domain.Part{
			Article:      p.Article,
			Brand:        p.Brand,
			Description:  p.Description,
			Supplier:     p.Supplier,
			Price:        p.Price,
			DeliveryDays: p.DeliveryDays,
			InStock:      p.InStock,
		})
	}
	return parts, nil
}

type vinOEMRequest struct {
	VIN        string `json:"vin"`
	PartName   string `json:"part_name"`
	TelegramID int64  `json:"telegram_id"`
}

type vinOEMResponse struct {
	VIN         string `json:"vin"`
	VehicleInfo struct {
		Brand string `json:"brand"`
		Name  string `json:"name"`
	} `json:"vehicle_info"`
	OEMParts []struct {
		Article string `json:"article"`
		Name    string `json:"name"`
		Source  string `json:"source"`
	} `json:"oem_parts"`
}

func (c *SearchClient) SearchVINOEM(ctx context.Context, telegramID int64, vin, partName string) (domain.VINResult, error) {
	req := vinOEMRequest{VIN: vin, PartName: partName, TelegramID: telegramID}
	var resp vinOEMResponse
	if err := c.api.Post(ctx, "/search/vin_oem", req, &resp); err != nil {
		return domain.VINResult{}, err
	}
	result := domain.VINResult{
		VIN: resp.VIN,
		Vehicle: domain.VehicleInfo{
			Brand: resp.VehicleInfo.Brand,
			Name:  resp.VehicleInfo.Name,
		},
		Parts: make([]domain.OEMPart, 0, len(resp.OEMParts)),
	}
	for _, p := range resp.OEMParts {
		result.Parts = append(result.Parts, domain.OEMPart{Article: p.Article, Name: p.Name, Source: p.Source})
	}
	return result, nil
}
