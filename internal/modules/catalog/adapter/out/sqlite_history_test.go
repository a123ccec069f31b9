package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"partshub/internal/modules/catalog/domain"
)

func TestHistoryRoundTrip(t *testing.T) {
	store, err := NewSQLiteHistoryStore(filepath.Join(t.TempDir(), "partshub.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	entries := []domain.HistoryEntry{
		{Query: "P85020", Kind: domain.SearchByArticle, Results: 4, At: at},
		{Query: "WAUZZZ8K9DA123456 brake pads", Kind: domain.SearchByVIN, Results: 2, At: at.Add(time.Minute)},
	}
	for _, entry := range entries {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Query != "WAUZZZ8K9DA123456 brake pads" || got[0].Kind != domain.SearchByVIN {
		t.Fatalf("first entry = %+v", got[0])
	}
	if got[1].Results != 4 || !got[1].At.Equal(at) {
		t.Fatalf("second entry = %+v", got[1])
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store, err := NewSQLiteHistoryStore(filepath.Join(t.TempDir(), "partshub.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		store.Record(ctx, domain.HistoryEntry{Query: "Q", Kind: domain.SearchByArticle, At: time.Now()})
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
}
