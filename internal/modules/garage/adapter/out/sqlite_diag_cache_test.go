package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"partshub/internal/modules/garage/domain"
)

type movableClock struct{ now time.Time }

func (c *movableClock) Now() time.Time { return c.now }

func TestDiagnosisCacheRoundTrip(t *testing.T) {
	clk := &movableClock{now: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)}
	cache, err := NewSQLiteDiagnosisCache(filepath.Join(t.TempDir(), "partshub.db"), clk)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	ctx := context.Background()

	diagnosis := domain.Diagnosis{
		Code:           "P0301",
		Vehicle:        "2018 Toyota Camry",
		Summary:        "Cylinder 1 misfire",
		PossibleCauses: []string{"worn spark plug", "failed ignition coil"},
		Severity:       domain.SeverityHigh,
	}
	if err := cache.Put(ctx, "2018 Toyota Camry", "P0301", diagnosis); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := cache.Get(ctx, "2018 Toyota Camry", "P0301")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Summary != diagnosis.Summary || len(got.PossibleCauses) != 2 || got.Severity != domain.SeverityHigh {
		t.Fatalf("got %+v", got)
	}

	if _, ok, _ := cache.Get(ctx, "2018 Toyota Camry", "P0302"); ok {
		t.Fatal("unknown code must miss")
	}
}

func TestDiagnosisCacheExpires(t *testing.T) {
	clk := &movableClock{now: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)}
	cache, err := NewSQLiteDiagnosisCache(filepath.Join(t.TempDir(), "partshub.db"), clk)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	ctx := context.Background()

	cache.Put(ctx, "2018 Toyota Camry", "P0301", domain.Diagnosis{Summary: "Misfire"})

	clk.now = clk.now.Add(6 * 24 * time.Hour)
	if _, ok, _ := cache.Get(ctx, "2018 Toyota Camry", "P0301"); !ok {
		t.Fatal("entry must still be fresh after six days")
	}

	clk.now = clk.now.Add(2 * 24 * time.Hour)
	if _, ok, _ := cache.Get(ctx, "2018 Toyota Camry", "P0301"); ok {
		t.Fatal("entry must expire after a week")
	}
}

func TestDiagnosisCacheOverwrite(t *testing.T) {
	clk := &movableClock{now: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)}
	cache, err := NewSQLiteDiagnosisCache(filepath.Join(t.TempDir(), "partshub.db"), clk)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	ctx := context.Background()

	cache.Put(ctx, "2018 Toyota Camry", "P0301", domain.Diagnosis{Summary: "old"})
	cache.Put(ctx, "2018 Toyota Camry", "P0301", domain.Diagnosis{Summary: "new"})

	got, ok, err := cache.Get(ctx, "2018 Toyota Camry", "P0301")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Summary != "new" {
		t.Fatalf("summary = %q", got.Summary)
	}
}
