package service

import (
	"context"
	"testing"

	"github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/store"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, seed *ledgerdomain.Document) (domain.Service, *store.MemoryStore) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	memStore := store.NewMemoryStore(seed)
	svc := New(Params{
		Store: memStore,
		Log:   zap.NewNop(),
		GenID: node,
	})
	return svc, memStore
}

func TestCreate_FixedItem(t *testing.T) {
	svc, _ := newService(t, &ledgerdomain.Document{})

	item, err := svc.Create(context.Background(), domain.CreateItemRequest{
		Name:     "Amul Milk 500ml",
		Category: domain.CategoryFixed,
		Price:    decimal.NewFromInt(28),
		Unit:     "500ml",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryFixed, item.Category)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(28)))
	assert.Empty(t, item.Addons)
}

func TestCreate_LooseItemGeneratesAddonsFromBaseUnit(t *testing.T) {
	svc, _ := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	milk, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:      "Loose Milk",
		Category:  domain.CategoryLoose,
		BasePrice: decimal.NewFromInt(60),
		BaseUnit:  domain.BaseUnitLiter,
	})
	require.NoError(t, err)

	labels := make([]string, 0, len(milk.Addons))
	for _, addon := range milk.Addons {
		labels = append(labels, addon.Label)
	}
	assert.Equal(t, []string{"250ml", "500ml", "1L", "2L"}, labels)

	paneer, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:      "Paneer",
		Category:  domain.CategoryLoose,
		BasePrice: decimal.NewFromInt(320),
		BaseUnit:  domain.BaseUnitKg,
	})
	require.NoError(t, err)

	labels = labels[:0]
	for _, addon := range paneer.Addons {
		labels = append(labels, addon.Label)
	}
	assert.Equal(t, []string{"250g", "500g", "1kg"}, labels)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateItemRequest{Name: " ", Category: domain.CategoryFixed})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateItemRequest{Name: "Milk", Category: "bulk"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.Create(ctx, domain.CreateItemRequest{Name: "Milk", Category: domain.CategoryFixed, Unit: "500ml"})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Create(ctx, domain.CreateItemRequest{
		Name:     "Milk",
		Category: domain.CategoryFixed,
		Price:    decimal.NewFromInt(28),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = svc.Create(ctx, domain.CreateItemRequest{
		Name:      "Loose Milk",
		Category:  domain.CategoryLoose,
		BasePrice: decimal.NewFromInt(60),
		BaseUnit:  "gallon",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBaseUnit)
}

func TestUpdate_BaseUnitEditKeepsStaleAddons(t *testing.T) {
	svc, _ := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	milk, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:      "Loose Milk",
		Category:  domain.CategoryLoose,
		BasePrice: decimal.NewFromInt(60),
		BaseUnit:  domain.BaseUnitLiter,
	})
	require.NoError(t, err)

	kg := domain.BaseUnitKg
	updated, err := svc.Update(ctx, domain.UpdateItemRequest{
		ID:       milk.ID.String(),
		BaseUnit: &kg,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BaseUnitKg, updated.BaseUnit)
	// addon list was generated at creation and is not recomputed
	assert.Equal(t, milk.Addons, updated.Addons)
}

func TestUpdate_CategoryFieldsFollowVariant(t *testing.T) {
	svc, _ := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	butter, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:     "Amul Butter 100g",
		Category: domain.CategoryFixed,
		Price:    decimal.NewFromInt(52),
		Unit:     "100g",
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(56)
	updated, err := svc.Update(ctx, domain.UpdateItemRequest{
		ID:    butter.ID.String(),
		Price: &price,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(56)))
	assert.Equal(t, domain.CategoryFixed, updated.Category)

	bad := decimal.NewFromInt(-1)
	_, err = svc.Update(ctx, domain.UpdateItemRequest{
		ID:    butter.ID.String(),
		Price: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestDelete_UnconditionalEvenWithInvoiceReferences(t *testing.T) {
	svc, memStore := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	milk, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:     "Amul Milk 500ml",
		Category: domain.CategoryFixed,
		Price:    decimal.NewFromInt(28),
		Unit:     "500ml",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, milk.ID.String()))

	doc, err := memStore.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, doc.Item(milk.ID))

	err = svc.Delete(ctx, milk.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FilterByCategory(t *testing.T) {
	svc, _ := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateItemRequest{
		Name:     "Amul Milk 500ml",
		Category: domain.CategoryFixed,
		Price:    decimal.NewFromInt(28),
		Unit:     "500ml",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateItemRequest{
		Name:      "Paneer",
		Category:  domain.CategoryLoose,
		BasePrice: decimal.NewFromInt(320),
		BaseUnit:  domain.BaseUnitKg,
	})
	require.NoError(t, err)

	loose, err := svc.List(ctx, domain.ListItemsRequest{Category: domain.CategoryLoose})
	require.NoError(t, err)
	require.Len(t, loose, 1)
	assert.Equal(t, "Paneer", loose[0].Name)

	all, err := svc.List(ctx, domain.ListItemsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
