package service

import (
	"context"
	"strings"

	"github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
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
}

type Service struct {
	store ledgerdomain.Store
	log   *zap.Logger
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		store: p.Store,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return domain.Customer{}, domain.ErrInvalidPhone
	}

	shift, err := normalizeShift(req.Shift)
	if err != nil {
		return domain.Customer{}, err
	}

	customer := domain.Customer{
		ID:          s.genID.Generate(),
		Name:        name,
		Phone:       phone,
		Shift:       shift,
		Outstanding: decimal.Zero,
	}

	err = s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		doc.Customers = append(doc.Customers, customer)
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}

	s.log.Info("customer created", zap.String("customer_id", customer.ID.String()))
	return customer, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	var updated domain.Customer
	err = s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		customer := doc.Customer(id)
		if customer == nil {
			return domain.ErrNotFound
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return domain.ErrInvalidName
			}
			customer.Name = name
		}
		if req.Phone != nil {
			phone := strings.TrimSpace(*req.Phone)
			if phone == "" {
				return domain.ErrInvalidPhone
			}
			customer.Phone = phone
		}
		if req.Shift != nil {
			shift, err := normalizeShift(*req.Shift)
			if err != nil {
				return err
			}
			customer.Shift = shift
		}

		updated = *customer
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	return s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		if doc.Customer(id) == nil {
			return domain.ErrNotFound
		}
		if doc.HasInvoicesFor(id) {
			return domain.ErrHasInvoices
		}

		for idx := range doc.Customers {
			if doc.Customers[idx].ID == id {
				doc.Customers = append(doc.Customers[:idx], doc.Customers[idx+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Customers, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Customer, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Customer{}, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Customer{}, err
	}

	customer := doc.Customer(id)
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *customer, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func normalizeShift(shift domain.Shift) (domain.Shift, error) {
	switch domain.Shift(strings.ToLower(strings.TrimSpace(string(shift)))) {
	case "":
		return domain.ShiftMorning, nil
	case domain.ShiftMorning:
		return domain.ShiftMorning, nil
	case domain.ShiftEvening:
		return domain.ShiftEvening, nil
	default:
		return "", domain.ErrInvalidShift
	}
}
