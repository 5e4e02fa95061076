// Package domain contains the customer model and service contract.
package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Shift tags when a customer takes delivery. Informational only.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

// Customer is a buyer with a running unpaid balance. Outstanding is mutated
// only by the invoice lifecycle (creation, payment toggles, dues clearing);
// customer edits never touch it.
type Customer struct {
	ID          snowflake.ID    `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Shift       Shift           `json:"shift"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type CreateCustomerRequest struct {
	Name  string
	Phone string
	Shift Shift
}

type UpdateCustomerRequest struct {
	ID    string
	Name  *string
	Phone *string
	Shift *Shift
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (Customer, error)
	// Delete removes a customer. It fails with ErrHasInvoices when any
	// invoice references the customer, leaving state unchanged.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPhone = errors.New("invalid_phone")
	ErrInvalidShift = errors.New("invalid_shift")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
	ErrHasInvoices  = errors.New("customer_has_invoices")
)
