package domain

import apperrors "partshub/internal/platform/errors"

// Line is one position in the cart. Lines are keyed by article number,
// the same key the parts catalog searches on.
type Line struct {
	Article      string
	Brand        string
	Description  string
	Supplier     string
	Price        float64
	DeliveryDays int
	Quantity     int
}

func (l Line) Subtotal() float64 { return l.Price * float64(l.Quantity) }

type Cart struct {
	Lines []Line
}

// Add merges the line into the cart. An article already present gains
// quantity instead of producing a second line.
func (c *Cart) Add(line Line) error {
	if line.Article == "" {
		return apperrors.ErrInvalidInput
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].Article == line.Article {
			c.Lines[i].Quantity += line.Quantity
			return nil
		}
	}
	c.Lines = append(c.Lines, line)
	return nil
}

// SetQuantity changes the quantity of an existing line. An unknown
// article leaves the cart untouched.
func (c *Cart) SetQuantity(article string, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidInput
	}
	for i := range c.Lines {
		if c.Lines[i].Article == article {
			c.Lines[i].Quantity = quantity
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (c *Cart) Remove(article string) error {
	for i := range c.Lines {
		if c.Lines[i].Article == article {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Total is always recomputed from the lines, never cached.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// Count is the number of physical items across all lines.
func (c Cart) Count() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
