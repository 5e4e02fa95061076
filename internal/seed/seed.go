// Package seed builds the fixed initial dataset persisted on first load:
// two demo customers, three fixed items and two loose items.
package seed

import (
	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Document returns the initial ledger document. Item addon lists come from
// the base unit, the same derivation item creation uses.
func Document(node *snowflake.Node) *ledgerdomain.Document {
	return &ledgerdomain.Document{
		Customers: []customerdomain.Customer{
			{
				ID:          node.Generate(),
				Name:        "Rajesh Kumar",
				Phone:       "9876543210",
				Shift:       customerdomain.ShiftMorning,
				Outstanding: decimal.Zero,
			},
			{
				ID:          node.Generate(),
				Name:        "Priya Sharma",
				Phone:       "9876543211",
				Shift:       customerdomain.ShiftEvening,
				Outstanding: decimal.Zero,
			},
		},
		Items: []catalogdomain.Item{
			{
				ID:       node.Generate(),
				Name:     "Amul Milk 500ml",
				Category: catalogdomain.CategoryFixed,
				Price:    decimal.NewFromInt(28),
				Unit:     "500ml",
			},
			{
				ID:       node.Generate(),
				Name:     "Amul Butter 100g",
				Category: catalogdomain.CategoryFixed,
				Price:    decimal.NewFromInt(52),
				Unit:     "100g",
			},
			{
				ID:       node.Generate(),
				Name:     "Amul Cheese 200g",
				Category: catalogdomain.CategoryFixed,
				Price:    decimal.NewFromInt(120),
				Unit:     "200g",
			},
			{
				ID:        node.Generate(),
				Name:      "Loose Milk",
				Category:  catalogdomain.CategoryLoose,
				BasePrice: decimal.NewFromInt(60),
				BaseUnit:  catalogdomain.BaseUnitLiter,
				Addons:    catalogdomain.AddonsForBaseUnit(catalogdomain.BaseUnitLiter),
			},
			{
				ID:        node.Generate(),
				Name:      "Paneer",
				Category:  catalogdomain.CategoryLoose,
				BasePrice: decimal.NewFromInt(320),
				BaseUnit:  catalogdomain.BaseUnitKg,
				Addons:    catalogdomain.AddonsForBaseUnit(catalogdomain.BaseUnitKg),
			},
		},
		Invoices: []invoicedomain.Invoice{},
	}
}
