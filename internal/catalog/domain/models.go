// Package domain contains the catalog item model: the fixed/loose
// tagged union and its pricing rules.
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Category distinguishes the two item pricing variants.
type Category string

const (
	// CategoryFixed items are complete packages sold at one flat price.
	CategoryFixed Category = "fixed"
	// CategoryLoose items are sold by weight or volume from a base price
	// per base unit.
	CategoryLoose Category = "loose"
)

// BaseUnit is the measuring unit of a loose item.
type BaseUnit string

const (
	BaseUnitLiter BaseUnit = "liter"
	BaseUnitKg    BaseUnit = "kg"
)

// Addon is a preset fraction of a loose item's base unit, e.g. "250ml" → 0.25.
type Addon struct {
	Label    string          `json:"label"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Item is a sellable catalog entry. Category decides which fields are
// meaningful: fixed items carry Price and Unit, loose items carry BasePrice,
// BaseUnit and Addons. The category is set at creation and never changes.
type Item struct {
	ID       snowflake.ID
	Name     string
	Category Category

	// Fixed variant.
	Price decimal.Decimal
	Unit  string

	// Loose variant.
	BasePrice decimal.Decimal
	BaseUnit  BaseUnit
	Addons    []Addon
}

// PriceFor returns the charge for selling qty of the item. Fixed items price
// per package regardless of the selection; loose items scale the base price.
func (i Item) PriceFor(qty decimal.Decimal) decimal.Decimal {
	switch i.Category {
	case CategoryFixed:
		return i.Price
	case CategoryLoose:
		return i.BasePrice.Mul(qty)
	}
	return decimal.Zero
}

// AddonPrice returns the charge for a preset addon selection.
func (i Item) AddonPrice(a Addon) decimal.Decimal {
	return i.BasePrice.Mul(a.Quantity)
}

// Addon looks up a preset addon by its label.
func (i Item) Addon(label string) (Addon, bool) {
	for _, a := range i.Addons {
		if a.Label == label {
			return a, true
		}
	}
	return Addon{}, false
}

// AddonsForBaseUnit derives the preset addon list for a base unit. The list
// is generated once at item creation; editing the base unit afterwards does
// not regenerate it.
func AddonsForBaseUnit(unit BaseUnit) []Addon {
	switch unit {
	case BaseUnitLiter:
		return []Addon{
			{Label: "250ml", Quantity: decimal.NewFromFloat(0.25)},
			{Label: "500ml", Quantity: decimal.NewFromFloat(0.5)},
			{Label: "1L", Quantity: decimal.NewFromInt(1)},
			{Label: "2L", Quantity: decimal.NewFromInt(2)},
		}
	case BaseUnitKg:
		return []Addon{
			{Label: "250g", Quantity: decimal.NewFromFloat(0.25)},
			{Label: "500g", Quantity: decimal.NewFromFloat(0.5)},
			{Label: "1kg", Quantity: decimal.NewFromInt(1)},
		}
	}
	return nil
}

type fixedItemJSON struct {
	ID       snowflake.ID    `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
}

type looseItemJSON struct {
	ID        snowflake.ID    `json:"id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	BasePrice decimal.Decimal `json:"basePrice"`
	BaseUnit  BaseUnit        `json:"baseUnit"`
	Addons    []Addon         `json:"addons"`
}

// MarshalJSON serializes only the fields of the item's variant, so documents
// keep the divergent fixed/loose shapes.
func (i Item) MarshalJSON() ([]byte, error) {
	switch i.Category {
	case CategoryFixed:
		return json.Marshal(fixedItemJSON{
			ID:       i.ID,
			Name:     i.Name,
			Category: i.Category,
			Price:    i.Price,
			Unit:     i.Unit,
		})
	case CategoryLoose:
		return json.Marshal(looseItemJSON{
			ID:        i.ID,
			Name:      i.Name,
			Category:  i.Category,
			BasePrice: i.BasePrice,
			BaseUnit:  i.BaseUnit,
			Addons:    i.Addons,
		})
	}
	return nil, fmt.Errorf("unknown item category %q", i.Category)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        snowflake.ID    `json:"id"`
		Name      string          `json:"name"`
		Category  Category        `json:"category"`
		Price     decimal.Decimal `json:"price"`
		Unit      string          `json:"unit"`
		BasePrice decimal.Decimal `json:"basePrice"`
		BaseUnit  BaseUnit        `json:"baseUnit"`
		Addons    []Addon         `json:"addons"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Category {
	case CategoryFixed:
		*i = Item{
			ID:       raw.ID,
			Name:     raw.Name,
			Category: raw.Category,
			Price:    raw.Price,
			Unit:     raw.Unit,
		}
	case CategoryLoose:
		*i = Item{
			ID:        raw.ID,
			Name:      raw.Name,
			Category:  raw.Category,
			BasePrice: raw.BasePrice,
			BaseUnit:  raw.BaseUnit,
			Addons:    raw.Addons,
		}
	default:
		return fmt.Errorf("unknown item category %q", raw.Category)
	}
	return nil
}
