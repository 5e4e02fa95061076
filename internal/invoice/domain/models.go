// Package domain contains the invoice model and lifecycle contract. All
// outstanding-balance mutation flows through this feature so the ledger
// invariant has one code path to audit.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/PrimeDigitals001/Prototype-pos/internal/cart"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Line is an immutable snapshot of a cart line at checkout time. UnitPrice
// is the fixed item's flat price or the loose item's base price; Total is
// the amount actually charged for the line.
type Line struct {
	ItemID    snowflake.ID    `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// Invoice is a finalized purchase. Immutable once created except for Paid.
type Invoice struct {
	ID         snowflake.ID    `json:"id"`
	CustomerID snowflake.ID    `json:"customerId"`
	Date       time.Time       `json:"date"`
	Lines      []Line          `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Paid       bool            `json:"paid"`
}

// CreateRequest finalizes a cart into an invoice. This is the only path
// that creates invoices.
type CreateRequest struct {
	CustomerID string
	Cart       *cart.Cart
	Paid       bool
}

type ListRequest struct {
	// CustomerID optionally restricts the listing to one customer.
	CustomerID string
}

type Service interface {
	// Create snapshots the cart into an invoice. An unpaid invoice adds its
	// total to the customer's outstanding balance; a paid one leaves the
	// balance untouched.
	Create(ctx context.Context, req CreateRequest) (Invoice, error)
	// TogglePayment flips the paid flag and applies the inverse balance
	// delta to the owning customer.
	TogglePayment(ctx context.Context, id string) (Invoice, error)
	// ClearDues zeroes a customer's outstanding balance without touching
	// invoice payment state. Unpaid invoices stay unpaid.
	ClearDues(ctx context.Context, customerID string) (customerdomain.Customer, error)
	// List returns invoices newest first.
	List(ctx context.Context, req ListRequest) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
