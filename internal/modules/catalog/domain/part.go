package domain

import (
	"strings"
	"time"

	apperrors "partshub/internal/platform/errors"
)

// Part is one supplier offer for an article.
type Part struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	InStock      bool
}

// OEMPart is a factory part number resolved from a VIN catalog, before
// any supplier offer is attached.
type OEMPart struct {
	Article string
	Name    string
	Source  string
}

type VehicleInfo struct {
	Brand string
	Name  string
}

type VINResult struct {
	VIN     string
	Vehicle VehicleInfo
	Parts   []OEMPart
}

// SearchKind distinguishes history entries.
type SearchKind string

const (
	SearchByArticle SearchKind = "article"
	SearchByVIN     SearchKind = "vin_oem"
)

type HistoryEntry struct {
	Query   string
	Kind    SearchKind
	Results int
	At      time.Time
}

const vinLength = 17

// NormalizeVIN upper-cases the VIN and checks its length. Offered VINs
// come from chat paste, so surrounding whitespace is common.
func NormalizeVIN(vin string) (string, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if len(vin) != vinLength {
		return "", apperrors.ErrInvalidInput
	}
	return vin, nil
}

func ValidateArticle(article string) error {
	if strings.TrimSpace(article) == "" {
		return apperrors.ErrInvalidInput
	}
	return nil
}
