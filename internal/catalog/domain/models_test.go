package domain

import (
	"encoding/json"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFor(t *testing.T) {
	fixed := Item{Category: CategoryFixed, Price: decimal.NewFromInt(28)}
	assert.True(t, fixed.PriceFor(decimal.NewFromInt(5)).Equal(decimal.NewFromInt(28)))

	loose := Item{Category: CategoryLoose, BasePrice: decimal.NewFromInt(60)}
	assert.True(t, loose.PriceFor(decimal.RequireFromString("0.25")).Equal(decimal.NewFromInt(15)))
}

func TestMarshal_KeepsVariantShapes(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fixed := Item{
		ID:       node.Generate(),
		Name:     "Amul Milk 500ml",
		Category: CategoryFixed,
		Price:    decimal.NewFromInt(28),
		Unit:     "500ml",
	}
	raw, err := json.Marshal(fixed)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "unit")
	assert.NotContains(t, fields, "basePrice")
	assert.NotContains(t, fields, "addons")

	loose := Item{
		ID:        node.Generate(),
		Name:      "Loose Milk",
		Category:  CategoryLoose,
		BasePrice: decimal.NewFromInt(60),
		BaseUnit:  BaseUnitLiter,
		Addons:    AddonsForBaseUnit(BaseUnitLiter),
	}
	raw, err = json.Marshal(loose)
	require.NoError(t, err)

	fields = nil
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "basePrice")
	assert.Contains(t, fields, "baseUnit")
	assert.Contains(t, fields, "addons")
	assert.NotContains(t, fields, "price")

	var back Item
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, loose.ID, back.ID)
	assert.Equal(t, BaseUnitLiter, back.BaseUnit)
	assert.Len(t, back.Addons, 4)
}

func TestUnmarshal_UnknownCategory(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"id":"1","name":"x","category":"bulk"}`), &item)
	assert.Error(t, err)
}
