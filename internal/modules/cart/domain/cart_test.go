package domain

import (
	"errors"
	"math"
	"testing"

	apperrors "partshub/internal/platform/errors"
)

func pad(article string, price float64) Line {
	return Line{
		Article:      article,
		Brand:        "Brembo",
		Description:  "Brake pad set",
		Supplier:     "autodoc",
		Price:        price,
		DeliveryDays: 3,
		Quantity:     1,
	}
}

func TestAddMergesSameArticle(t *testing.T) {
	var cart Cart
	if err := cart.Add(pad("P85020", 45.90)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.Add(pad("P85020", 45.90)); err != nil {
		t.Fatalf("add again: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("lines = %d, want a single merged line", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", cart.Lines[0].Quantity)
	}
}

func TestAddAccumulatesQuantity(t *testing.T) {
	var cart Cart
	first := pad("P85020", 45.90)
	first.Quantity = 2
	second := pad("P85020", 45.90)
	second.Quantity = 3

	cart.Add(first)
	cart.Add(second)

	if got := cart.Lines[0].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}
	if got := cart.Count(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
}

func TestAddRejectsEmptyArticle(t *testing.T) {
	var cart Cart
	if err := cart.Add(Line{Price: 10}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatal("cart must stay empty")
	}
}

func TestSetQuantityUnknownArticleIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(pad("P85020", 45.90))

	err := cart.SetQuantity("GHOST-1", 7)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 1 {
		t.Fatalf("cart changed: %+v", cart.Lines)
	}
}

func TestTotalRecomputedAfterEveryChange(t *testing.T) {
	var cart Cart
	cart.Add(pad("P85020", 45.90))
	oil := pad("OIL-5W30", 12.50)
	oil.Quantity = 4
	cart.Add(oil)

	if got, want := cart.Total(), 45.90+4*12.50; math.Abs(got-want) > 1e-9 {
		t.Fatalf("total = %v, want %v", got, want)
	}

	cart.SetQuantity("P85020", 2)
	if got, want := cart.Total(), 2*45.90+4*12.50; math.Abs(got-want) > 1e-9 {
		t.Fatalf("total after update = %v, want %v", got, want)
	}

	cart.Remove("OIL-5W30")
	if got, want := cart.Total(), 2*45.90; math.Abs(got-want) > 1e-9 {
		t.Fatalf("total after remove = %v, want %v", got, want)
	}
}

func TestRemoveUnknownArticle(t *testing.T) {
	var cart Cart
	cart.Add(pad("P85020", 45.90))

	if err := cart.Remove("GHOST-1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatal("cart must be unchanged")
	}
}
