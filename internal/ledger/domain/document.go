// Package domain defines the ledger document and the whole-document store
// contract the bookkeeping services are written against.
package domain

import (
	"context"
	"encoding/json"

	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
)

// Document is the single source of truth: every customer, catalog item and
// invoice the shop knows about. It loads and saves as one unit.
type Document struct {
	Customers []customerdomain.Customer `json:"customers"`
	Items     []catalogdomain.Item      `json:"items"`
	Invoices  []invoicedomain.Invoice   `json:"invoices"`
}

// Store persists the ledger document with whole-document replace semantics.
// There are no partial writes and no transactions beyond "the saved document
// is the new document".
type Store interface {
	// Load returns the current document, seeding the initial dataset on
	// first use.
	Load(ctx context.Context) (*Document, error)
	// Save replaces the persisted document.
	Save(ctx context.Context, doc *Document) error
	// Update runs fn on the current document and saves the result, holding
	// the store's writer lock for the whole read-modify-write. If fn
	// returns an error nothing is saved.
	Update(ctx context.Context, fn func(*Document) error) error
}

// Customer returns a pointer into the document's customer slice, or nil.
func (d *Document) Customer(id snowflake.ID) *customerdomain.Customer {
	for idx := range d.Customers {
		if d.Customers[idx].ID == id {
			return &d.Customers[idx]
		}
	}
	return nil
}

// Item returns a pointer into the document's item slice, or nil.
func (d *Document) Item(id snowflake.ID) *catalogdomain.Item {
	for idx := range d.Items {
		if d.Items[idx].ID == id {
			return &d.Items[idx]
		}
	}
	return nil
}

// Invoice returns a pointer into the document's invoice slice, or nil.
func (d *Document) Invoice(id snowflake.ID) *invoicedomain.Invoice {
	for idx := range d.Invoices {
		if d.Invoices[idx].ID == id {
			return &d.Invoices[idx]
		}
	}
	return nil
}

// HasInvoicesFor reports whether any invoice references the customer.
func (d *Document) HasInvoicesFor(customerID snowflake.ID) bool {
	for idx := range d.Invoices {
		if d.Invoices[idx].CustomerID == customerID {
			return true
		}
	}
	return false
}

// Clone deep-copies the document through its JSON form, so callers can hand
// out documents without aliasing store state.
func (d *Document) Clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
