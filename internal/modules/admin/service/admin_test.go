package service

import (
	"context"
	"errors"
	"testing"

	"partshub/internal/modules/admin/domain"
	apperrors "partshub/internal/platform/errors"
)

type fakeAdminAPI struct {
	limit, skip  int
	markupSent   float64
	markupCaller int64
	updates      int
}

func (a *fakeAdminAPI) Activity(_ context.Context, limit, skip int) ([]domain.ActivityEntry, error) {
	a.limit, a.skip = limit, skip
	return nil, nil
}

func (a *fakeAdminAPI) Users(_ context.Context) ([]domain.UserSummary, error) { return nil, nil }

func (a *fakeAdminAPI) Stats(_ context.Context) (domain.Stats, error) { return domain.Stats{}, nil }

func (a *fakeAdminAPI) Settings(_ context.Context) (domain.Settings, error) {
	return domain.Settings{MarkupPercent: 5}, nil
}

func (a *fakeAdminAPI) UpdateSettings(_ context.Context, telegramID int64, percent float64) error {
	a.updates++
	a.markupCaller = telegramID
	a.markupSent = percent
	return nil
}

func TestIsAdmin(t *testing.T) {
	if !New(&fakeAdminAPI{}, 500, 500).IsAdmin() {
		t.Fatal("matching id must be admin")
	}
	if New(&fakeAdminAPI{}, 500, 42).IsAdmin() {
		t.Fatal("other id must not be admin")
	}
	if New(&fakeAdminAPI{}, 0, 0).IsAdmin() {
		t.Fatal("unset admin id must never match")
	}
}

func TestActivityDefaultsPagination(t *testing.T) {
	api := &fakeAdminAPI{}
	a := New(api, 500, 500)

	if _, err := a.Activity(context.Background(), 0, -5); err != nil {
		t.Fatalf("activity: %v", err)
	}
	if api.limit != 100 || api.skip != 0 {
		t.Fatalf("limit=%d skip=%d", api.limit, api.skip)
	}
}

func TestUpdateMarkupBounds(t *testing.T) {
	api := &fakeAdminAPI{}
	a := New(api, 500, 500)

	for _, percent := range []float64{-1, 101} {
		if err := a.UpdateMarkup(context.Background(), percent); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("percent %v: err = %v, want invalid input", percent, err)
		}
	}
	if api.updates != 0 {
		t.Fatal("invalid markup must not reach the backend")
	}

	if err := a.UpdateMarkup(context.Background(), 15); err != nil {
		t.Fatalf("update: %v", err)
	}
	if api.markupSent != 15 || api.markupCaller != 500 {
		t.Fatalf("sent %v from %d", api.markupSent, api.markupCaller)
	}
}
