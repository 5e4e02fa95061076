// Package cart builds a pending purchase from catalog items before it is
// finalized into an invoice. Fixed items merge into a single line per item;
// loose selections are priced per selection and never merge.
package cart

import (
	"errors"
	"fmt"

	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart        = errors.New("empty_cart")
	ErrManualQuantity   = errors.New("manual_quantity_required")
	ErrWrongCategory    = errors.New("wrong_item_category")
	ErrUnknownAddon     = errors.New("unknown_addon")
	ErrCustomerRequired = errors.New("customer_required")
)

// Line is one transient cart entry.
type Line struct {
	ID       string
	ItemID   snowflake.ID
	Name     string
	Category catalogdomain.Category

	// Unit is the fixed item's package label, or the loose item's base unit.
	Unit string

	// UnitPrice is the fixed item's flat price, or the loose item's base
	// price per base unit.
	UnitPrice decimal.Decimal

	Quantity decimal.Decimal

	// Price is the quantity-priced amount of a loose line. Fixed lines keep
	// Price equal to UnitPrice and derive their total at summation time.
	Price decimal.Decimal

	Manual     bool
	AddonLabel string
}

// Total is the amount this line contributes to the cart total.
func (l Line) Total() decimal.Decimal {
	if l.Category == catalogdomain.CategoryFixed {
		return l.UnitPrice.Mul(l.Quantity)
	}
	return l.Price
}

// Cart holds the ordered lines of a pending purchase.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddFixed adds one package of a fixed item. Adding the same item again
// increments the existing line's quantity instead of appending a duplicate.
func (c *Cart) AddFixed(item catalogdomain.Item) (Line, error) {
	if item.Category != catalogdomain.CategoryFixed {
		return Line{}, ErrWrongCategory
	}

	for idx := range c.lines {
		if c.lines[idx].Category == catalogdomain.CategoryFixed && c.lines[idx].ItemID == item.ID {
			c.lines[idx].Quantity = c.lines[idx].Quantity.Add(decimal.NewFromInt(1))
			return c.lines[idx], nil
		}
	}

	line := Line{
		ID:        uuid.NewString(),
		ItemID:    item.ID,
		Name:      item.Name,
		Category:  catalogdomain.CategoryFixed,
		Unit:      item.Unit,
		UnitPrice: item.Price,
		Quantity:  decimal.NewFromInt(1),
		Price:     item.Price,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// AddLooseAddon adds a preset fraction of a loose item. Every call appends
// its own line, even for the same item and addon.
func (c *Cart) AddLooseAddon(item catalogdomain.Item, addonLabel string) (Line, error) {
	if item.Category != catalogdomain.CategoryLoose {
		return Line{}, ErrWrongCategory
	}
	addon, ok := item.Addon(addonLabel)
	if !ok {
		return Line{}, ErrUnknownAddon
	}

	line := Line{
		ID:         uuid.NewString(),
		ItemID:     item.ID,
		Name:       fmt.Sprintf("%s (%s)", item.Name, addon.Label),
		Category:   catalogdomain.CategoryLoose,
		Unit:       string(item.BaseUnit),
		UnitPrice:  item.BasePrice,
		Quantity:   addon.Quantity,
		Price:      item.AddonPrice(addon),
		AddonLabel: addon.Label,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// AddLooseManual adds a loose item whose quantity will be typed in. The line
// starts at quantity zero and blocks checkout until a positive quantity is
// supplied.
func (c *Cart) AddLooseManual(item catalogdomain.Item) (Line, error) {
	if item.Category != catalogdomain.CategoryLoose {
		return Line{}, ErrWrongCategory
	}

	line := Line{
		ID:        uuid.NewString(),
		ItemID:    item.ID,
		Name:      item.Name,
		Category:  catalogdomain.CategoryLoose,
		Unit:      string(item.BaseUnit),
		UnitPrice: item.BasePrice,
		Quantity:  decimal.Zero,
		Price:     decimal.Zero,
		Manual:    true,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// SetQuantity parses value as a number and updates the line. Anything that
// is not a positive number removes the line entirely. Manual loose lines
// reprice from the base price; fixed lines keep their per-unit price.
func (c *Cart) SetQuantity(lineID, value string) {
	qty, err := decimal.NewFromString(value)
	if err != nil || !qty.IsPositive() {
		c.Remove(lineID)
		return
	}

	for idx := range c.lines {
		if c.lines[idx].ID != lineID {
			continue
		}
		switch {
		case c.lines[idx].Category == catalogdomain.CategoryLoose && c.lines[idx].Manual:
			c.lines[idx].Quantity = qty
			c.lines[idx].Price = c.lines[idx].UnitPrice.Mul(qty)
		case c.lines[idx].Category == catalogdomain.CategoryFixed:
			c.lines[idx].Quantity = qty
		}
		return
	}
}

// Remove drops a line. Unknown ids are a no-op.
func (c *Cart) Remove(lineID string) {
	for idx := range c.lines {
		if c.lines[idx].ID == lineID {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return
		}
	}
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Total is the exact cart total; this is what gets persisted.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.lines {
		sum = sum.Add(line.Total())
	}
	return sum
}

// DisplayTotal is the cart total rounded to two decimal places for display.
func (c *Cart) DisplayTotal() decimal.Decimal {
	return c.Total().Round(2)
}

// Validate checks the checkout preconditions: a non-empty cart with no
// manual loose line left at a non-positive quantity.
func (c *Cart) Validate() error {
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}
	for _, line := range c.lines {
		if line.Category == catalogdomain.CategoryLoose && line.Manual && !line.Quantity.IsPositive() {
			return ErrManualQuantity
		}
	}
	return nil
}
