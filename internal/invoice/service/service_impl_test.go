package service

import (
	"context"
	"testing"
	"time"

	cartengine "github.com/PrimeDigitals001/Prototype-pos/internal/cart"
	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/clock"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/store"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc      domain.Service
	store    *store.MemoryStore
	node     *snowflake.Node
	clk      *clock.FakeClock
	customer customerdomain.Customer
	milk     catalogdomain.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	customer := customerdomain.Customer{
		ID:          node.Generate(),
		Name:        "Rajesh Kumar",
		Phone:       "9876543210",
		Shift:       customerdomain.ShiftMorning,
		Outstanding: decimal.Zero,
	}
	milk := catalogdomain.Item{
		ID:       node.Generate(),
		Name:     "Amul Milk 500ml",
		Category: catalogdomain.CategoryFixed,
		Price:    decimal.NewFromInt(28),
		Unit:     "500ml",
	}

	seed := &ledgerdomain.Document{
		Customers: []customerdomain.Customer{customer},
		Items:     []catalogdomain.Item{milk},
	}

	memStore := store.NewMemoryStore(seed)
	clk := clock.NewFakeClock(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))

	svc := New(Params{
		Store: memStore,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clk,
	})

	return &fixture{
		svc:      svc,
		store:    memStore,
		node:     node,
		clk:      clk,
		customer: customer,
		milk:     milk,
	}
}

func (f *fixture) cartWithMilk(t *testing.T, qty string) *cartengine.Cart {
	t.Helper()
	c := cartengine.New()
	line, err := c.AddFixed(f.milk)
	require.NoError(t, err)
	c.SetQuantity(line.ID, qty)
	return c
}

func (f *fixture) outstanding(t *testing.T) decimal.Decimal {
	t.Helper()
	doc, err := f.store.Load(context.Background())
	require.NoError(t, err)
	customer := doc.Customer(f.customer.ID)
	require.NotNil(t, customer)
	return customer.Outstanding
}

func TestCreate_UnpaidAddsToOutstanding(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "3"),
		Paid:       false,
	})
	require.NoError(t, err)

	assert.True(t, inv.Total.Equal(decimal.NewFromInt(84)))
	assert.False(t, inv.Paid)
	assert.Equal(t, f.clk.Now(), inv.Date)
	assert.Len(t, inv.Lines, 1)
	assert.True(t, f.outstanding(t).Equal(decimal.NewFromInt(84)))
}

func TestCreate_PaidLeavesOutstandingUntouched(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "2"),
		Paid:       true,
	})
	require.NoError(t, err)

	assert.True(t, inv.Paid)
	assert.True(t, f.outstanding(t).IsZero())
}

func TestCreate_UnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateRequest{
		CustomerID: f.node.Generate().String(),
		Cart:       f.cartWithMilk(t, "1"),
	})
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)
	assert.True(t, f.outstanding(t).IsZero())
}

func TestCreate_EmptyCartDoesNotMutateLedger(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       cartengine.New(),
	})
	assert.ErrorIs(t, err, cartengine.ErrEmptyCart)

	invoices, err := f.svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestTogglePayment_RoundTripRestoresOutstanding(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "3"),
	})
	require.NoError(t, err)
	require.True(t, f.outstanding(t).Equal(decimal.NewFromInt(84)))

	toggled, err := f.svc.TogglePayment(context.Background(), inv.ID.String())
	require.NoError(t, err)
	assert.True(t, toggled.Paid)
	assert.True(t, f.outstanding(t).IsZero())

	toggled, err = f.svc.TogglePayment(context.Background(), inv.ID.String())
	require.NoError(t, err)
	assert.False(t, toggled.Paid)
	assert.True(t, f.outstanding(t).Equal(decimal.NewFromInt(84)))
}

func TestTogglePayment_UnknownInvoice(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TogglePayment(context.Background(), f.node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTogglePayment_InvalidID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TogglePayment(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestClearDues_ZeroesBalanceButKeepsInvoicesUnpaid(t *testing.T) {
	f := newFixture(t)

	inv, err := f.svc.Create(context.Background(), domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "5"),
	})
	require.NoError(t, err)
	require.True(t, f.outstanding(t).Equal(decimal.NewFromInt(140)))

	cleared, err := f.svc.ClearDues(context.Background(), f.customer.ID.String())
	require.NoError(t, err)
	assert.True(t, cleared.Outstanding.IsZero())
	assert.True(t, f.outstanding(t).IsZero())

	stored, err := f.svc.GetByID(context.Background(), inv.ID.String())
	require.NoError(t, err)
	assert.False(t, stored.Paid)
}

func TestClearDues_UnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClearDues(context.Background(), f.node.Generate().String())
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)
}

func TestOutstandingInvariant_AcrossCreateAndToggleSequence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "1"),
	})
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "2"),
	})
	require.NoError(t, err)

	// 28 + 56 unpaid
	assert.True(t, f.outstanding(t).Equal(decimal.NewFromInt(84)))

	_, err = f.svc.TogglePayment(ctx, first.ID.String())
	require.NoError(t, err)
	assert.True(t, f.outstanding(t).Equal(decimal.NewFromInt(56)))

	_, err = f.svc.TogglePayment(ctx, second.ID.String())
	require.NoError(t, err)
	assert.True(t, f.outstanding(t).IsZero())
}

func TestList_NewestFirstAndCustomerFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "1"),
		Paid:       true,
	})
	require.NoError(t, err)

	f.clk.Advance(time.Hour)
	second, err := f.svc.Create(ctx, domain.CreateRequest{
		CustomerID: f.customer.ID.String(),
		Cart:       f.cartWithMilk(t, "2"),
		Paid:       true,
	})
	require.NoError(t, err)

	invoices, err := f.svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, second.ID, invoices[0].ID)
	assert.Equal(t, first.ID, invoices[1].ID)

	filtered, err := f.svc.List(ctx, domain.ListRequest{CustomerID: f.node.Generate().String()})
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
