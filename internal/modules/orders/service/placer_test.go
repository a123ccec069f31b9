package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"partshub/internal/modules/orders/domain"
	apperrors "partshub/internal/platform/errors"
)

type fakeOrdersAPI struct {
	orderID string
	total   float64
	err     error
	created int
}

func (a *fakeOrdersAPI) Create(_ context.Context, _ int64, _ domain.CustomerInfo) (string, float64, error) {
	a.created++
	return a.orderID, a.total, a.err
}

func (a *fakeOrdersAPI) List(_ context.Context, _ int64) ([]domain.Order, error) { return nil, a.err }

func (a *fakeOrdersAPI) Get(_ context.Context, _ string) (domain.Order, error) {
	return domain.Order{}, a.err
}

type fakeCart struct {
	empty   bool
	cleared int
}

func (c *fakeCart) Empty() bool { return c.empty }
func (c *fakeCart) Clear()      { c.cleared++ }

func TestPlaceRequiresNameAndPhone(t *testing.T) {
	api := &fakeOrdersAPI{}
	p := NewPlacer(api, &fakeCart{}, 42, zap.NewNop())

	cases := []domain.CustomerInfo{
		{Phone: "+79990001122"},
		{Name: "Vasya"},
		{Name: "  ", Phone: "  "},
	}
	for _, customer := range cases {
		if _, _, err := p.Place(context.Background(), customer); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("customer %+v: err = %v, want invalid input", customer, err)
		}
	}
	if api.created != 0 {
		t.Fatal("invalid checkout must not reach the backend")
	}
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	p := NewPlacer(&fakeOrdersAPI{}, &fakeCart{empty: true}, 42, zap.NewNop())

	_, _, err := p.Place(context.Background(), domain.CustomerInfo{Name: "Vasya", Phone: "+79990001122"})
	if !errors.Is(err, apperrors.ErrEmptyCart) {
		t.Fatalf("err = %v, want empty cart", err)
	}
}

func TestPlaceClearsCartOnSuccess(t *testing.T) {
	api := &fakeOrdersAPI{orderID: "ord-1", total: 91.80}
	cart := &fakeCart{}
	p := NewPlacer(api, cart, 42, zap.NewNop())

	orderID, total, err := p.Place(context.Background(), domain.CustomerInfo{Name: "Vasya", Phone: "+79990001122"})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if orderID != "ord-1" || total != 91.80 {
		t.Fatalf("got %q %v", orderID, total)
	}
	if cart.cleared != 1 {
		t.Fatal("cart must be cleared after checkout")
	}
}

func TestPlaceKeepsCartOnFailure(t *testing.T) {
	api := &fakeOrdersAPI{err: errors.New("boom")}
	cart := &fakeCart{}
	p := NewPlacer(api, cart, 42, zap.NewNop())

	if _, _, err := p.Place(context.Background(), domain.CustomerInfo{Name: "Vasya", Phone: "+79990001122"}); err == nil {
		t.Fatal("expected error")
	}
	if cart.cleared != 0 {
		t.Fatal("cart must survive a failed checkout")
	}
}

func TestGetRequiresID(t *testing.T) {
	p := NewPlacer(&fakeOrdersAPI{}, &fakeCart{}, 42, zap.NewNop())
	if _, err := p.Get(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}
