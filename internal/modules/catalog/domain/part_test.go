package domain

import (
	"errors"
	"testing"

	apperrors "partshub/internal/platform/errors"
)

func TestNormalizeVIN(t *testing.T) {
	got, err := NormalizeVIN("  wauzzz8k9da123456 ")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "WAUZZZ8K9DA123456" {
		t.Fatalf("vin = %q", got)
	}
}

func TestNormalizeVINRejectsWrongLength(t *testing.T) {
	for _, vin := range []string{"", "WAUZZZ8K9DA12345", "WAUZZZ8K9DA1234567"} {
		if _, err := NormalizeVIN(vin); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("vin %q: err = %v, want invalid input", vin, err)
		}
	}
}

func TestValidateArticle(t *testing.T) {
	if err := ValidateArticle("P85020"); err != nil {
		t.Fatalf("valid article rejected: %v", err)
	}
	if err := ValidateArticle("   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}
