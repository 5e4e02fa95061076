package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// CreateItemRequest carries the raw form fields for a new item. Category
// decides which of the variant fields are read.
type CreateItemRequest struct {
	Name     string
	Category Category

	Price decimal.Decimal
	Unit  string

	BasePrice decimal.Decimal
	BaseUnit  BaseUnit
}

// UpdateItemRequest edits raw field values only. The category is fixed at
// creation; a loose item's addons are not regenerated when the base unit
// changes.
type UpdateItemRequest struct {
	ID   string
	Name *string

	Price *decimal.Decimal
	Unit  *string

	BasePrice *decimal.Decimal
	BaseUnit  *BaseUnit
}

type ListItemsRequest struct {
	Category Category
}

type Service interface {
	Create(ctx context.Context, req CreateItemRequest) (Item, error)
	Update(ctx context.Context, req UpdateItemRequest) (Item, error)
	// Delete removes an item unconditionally. Historical invoices keep
	// their snapshot of the item but their item references no longer
	// resolve in the catalog.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req ListItemsRequest) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
}

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidCategory  = errors.New("invalid_category")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrInvalidUnit      = errors.New("invalid_unit")
	ErrInvalidBasePrice = errors.New("invalid_base_price")
	ErrInvalidBaseUnit  = errors.New("invalid_base_unit")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
)
