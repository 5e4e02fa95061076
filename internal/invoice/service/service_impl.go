package service

import (
	"context"
	"sort"
	"strings"

	"github.com/PrimeDigitals001/Prototype-pos/internal/cart"
	"github.com/PrimeDigitals001/Prototype-pos/internal/clock"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Store ledgerdomain.Store
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Service struct {
	store ledgerdomain.Store
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		store: p.Store,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

// Create snapshots the cart into an invoice inside a single store update,
// so the invoice append and the balance delta land together or not at all.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Invoice, error) {
	customerID, err := s.parseCustomerID(req.CustomerID)
	if err != nil {
		return domain.Invoice{}, err
	}

	if req.Cart == nil {
		return domain.Invoice{}, cart.ErrEmptyCart
	}
	if err := req.Cart.Validate(); err != nil {
		return domain.Invoice{}, err
	}

	lines := make([]domain.Line, 0, req.Cart.Len())
	for _, line := range req.Cart.Lines() {
		lines = append(lines, domain.Line{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total(),
		})
	}

	invoice := domain.Invoice{
		ID:         s.genID.Generate(),
		CustomerID: customerID,
		Date:       s.clock.Now(),
		Lines:      lines,
		Total:      req.Cart.Total(),
		Paid:       req.Paid,
	}

	err = s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		customer := doc.Customer(customerID)
		if customer == nil {
			return customerdomain.ErrNotFound
		}

		doc.Invoices = append(doc.Invoices, invoice)
		if !invoice.Paid {
			customer.Outstanding = customer.Outstanding.Add(invoice.Total)
		}
		return nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("total", invoice.Total.StringFixed(2)),
		zap.Bool("paid", invoice.Paid),
	)
	return invoice, nil
}

// TogglePayment flips the paid flag and applies the inverse balance delta.
// Unknown invoice or customer ids surface not_found rather than silently
// doing nothing.
func (s *Service) TogglePayment(ctx context.Context, rawID string) (domain.Invoice, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}

	var toggled domain.Invoice
	err = s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		invoice := doc.Invoice(id)
		if invoice == nil {
			return domain.ErrNotFound
		}
		customer := doc.Customer(invoice.CustomerID)
		if customer == nil {
			return customerdomain.ErrNotFound
		}

		invoice.Paid = !invoice.Paid
		if invoice.Paid {
			customer.Outstanding = customer.Outstanding.Sub(invoice.Total)
		} else {
			customer.Outstanding = customer.Outstanding.Add(invoice.Total)
		}

		toggled = *invoice
		return nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice payment toggled",
		zap.String("invoice_id", toggled.ID.String()),
		zap.Bool("paid", toggled.Paid),
	)
	return toggled, nil
}

// ClearDues zeroes the customer's outstanding balance. It does not mark
// unpaid invoices paid; the running balance and the invoice list are
// deliberately decoupled here.
func (s *Service) ClearDues(ctx context.Context, rawCustomerID string) (customerdomain.Customer, error) {
	customerID, err := s.parseCustomerID(rawCustomerID)
	if err != nil {
		return customerdomain.Customer{}, err
	}

	var cleared customerdomain.Customer
	err = s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		customer := doc.Customer(customerID)
		if customer == nil {
			return customerdomain.ErrNotFound
		}

		customer.Outstanding = decimal.Zero
		cleared = *customer
		return nil
	})
	if err != nil {
		return customerdomain.Customer{}, err
	}

	s.log.Info("customer dues cleared", zap.String("customer_id", customerID.String()))
	return cleared, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Invoice, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	invoices := doc.Invoices
	if strings.TrimSpace(req.CustomerID) != "" {
		customerID, err := s.parseCustomerID(req.CustomerID)
		if err != nil {
			return nil, err
		}
		filtered := make([]domain.Invoice, 0, len(invoices))
		for _, invoice := range invoices {
			if invoice.CustomerID == customerID {
				filtered = append(filtered, invoice)
			}
		}
		invoices = filtered
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date.After(invoices[j].Date)
	})
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Invoice, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice := doc.Invoice(id)
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return *invoice, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func (s *Service) parseCustomerID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, customerdomain.ErrInvalidID
	}
	return id, nil
}
