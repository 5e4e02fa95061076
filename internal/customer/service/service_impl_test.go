package service

import (
	"context"
	"testing"
	"time"

	"github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/ledger/store"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, seed *ledgerdomain.Document) (domain.Service, *store.MemoryStore, *snowflake.Node) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	memStore := store.NewMemoryStore(seed)
	svc := New(Params{
		Store: memStore,
		Log:   zap.NewNop(),
		GenID: node,
	})
	return svc, memStore, node
}

func TestCreate_TrimsAndDefaultsShift(t *testing.T) {
	svc, _, _ := newService(t, &ledgerdomain.Document{})

	customer, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:  "  Rajesh Kumar  ",
		Phone: " 9876543210 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Rajesh Kumar", customer.Name)
	assert.Equal(t, "9876543210", customer.Phone)
	assert.Equal(t, domain.ShiftMorning, customer.Shift)
	assert.True(t, customer.Outstanding.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newService(t, &ledgerdomain.Document{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "  ", Phone: "9876543210"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "Rajesh", Phone: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)

	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Name: "Rajesh", Phone: "9876543210", Shift: "night"})
	assert.ErrorIs(t, err, domain.ErrInvalidShift)
}

func TestUpdate_EditsFieldsButNeverOutstanding(t *testing.T) {
	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	existing := domain.Customer{
		ID:          node.Generate(),
		Name:        "Priya Sharma",
		Phone:       "9876543211",
		Shift:       domain.ShiftEvening,
		Outstanding: decimal.NewFromInt(150),
	}
	svc, memStore, _ := newService(t, &ledgerdomain.Document{Customers: []domain.Customer{existing}})

	newName := "Priya S"
	newShift := domain.ShiftMorning
	updated, err := svc.Update(context.Background(), domain.UpdateCustomerRequest{
		ID:    existing.ID.String(),
		Name:  &newName,
		Shift: &newShift,
	})
	require.NoError(t, err)

	assert.Equal(t, "Priya S", updated.Name)
	assert.Equal(t, "9876543211", updated.Phone)
	assert.Equal(t, domain.ShiftMorning, updated.Shift)
	assert.True(t, updated.Outstanding.Equal(decimal.NewFromInt(150)))

	doc, err := memStore.Load(context.Background())
	require.NoError(t, err)
	stored := doc.Customer(existing.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.Outstanding.Equal(decimal.NewFromInt(150)))
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, node := newService(t, &ledgerdomain.Document{})

	name := "Nobody"
	_, err := svc.Update(context.Background(), domain.UpdateCustomerRequest{
		ID:   node.Generate().String(),
		Name: &name,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_BlockedWhileInvoicesExist(t *testing.T) {
	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	customer := domain.Customer{
		ID:          node.Generate(),
		Name:        "Rajesh Kumar",
		Phone:       "9876543210",
		Shift:       domain.ShiftMorning,
		Outstanding: decimal.NewFromInt(84),
	}
	seed := &ledgerdomain.Document{
		Customers: []domain.Customer{customer},
		Invoices: []invoicedomain.Invoice{
			{
				ID:         node.Generate(),
				CustomerID: customer.ID,
				Date:       time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
				Total:      decimal.NewFromInt(84),
			},
		},
	}
	svc, memStore, _ := newService(t, seed)

	err = svc.Delete(context.Background(), customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrHasInvoices)

	doc, err := memStore.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Customer(customer.ID))
	assert.Len(t, doc.Invoices, 1)
}

func TestDelete_AllowedWithoutInvoices(t *testing.T) {
	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	customer := domain.Customer{
		ID:          node.Generate(),
		Name:        "Rajesh Kumar",
		Phone:       "9876543210",
		Shift:       domain.ShiftMorning,
		Outstanding: decimal.Zero,
	}
	svc, memStore, _ := newService(t, &ledgerdomain.Document{Customers: []domain.Customer{customer}})

	require.NoError(t, svc.Delete(context.Background(), customer.ID.String()))

	doc, err := memStore.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc.Customer(customer.ID))
}

func TestDelete_NotFoundSurfaced(t *testing.T) {
	svc, _, node := newService(t, &ledgerdomain.Document{})

	err := svc.Delete(context.Background(), node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc, _, _ := newService(t, &ledgerdomain.Document{})

	_, err := svc.GetByID(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
