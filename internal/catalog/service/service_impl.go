package service

import (
	"context"
	"strings"

	"github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/bwmarrin/snowflake"
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
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	item := domain.Item{
		ID:       s.genID.Generate(),
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
	}
	if item.Name == "" {
		return domain.Item{}, domain.ErrInvalidName
	}

	switch req.Category {
	case domain.CategoryFixed:
		if !req.Price.IsPositive() {
			return domain.Item{}, domain.ErrInvalidPrice
		}
		unit := strings.TrimSpace(req.Unit)
		if unit == "" {
			return domain.Item{}, domain.ErrInvalidUnit
		}
		item.Price = req.Price
		item.Unit = unit
	case domain.CategoryLoose:
		if !req.BasePrice.IsPositive() {
			return domain.Item{}, domain.ErrInvalidBasePrice
		}
		if req.BaseUnit != domain.BaseUnitLiter && req.BaseUnit != domain.BaseUnitKg {
			return domain.Item{}, domain.ErrInvalidBaseUnit
		}
		item.BasePrice = req.BasePrice
		item.BaseUnit = req.BaseUnit
		item.Addons = domain.AddonsForBaseUnit(req.BaseUnit)
	default:
		return domain.Item{}, domain.ErrInvalidCategory
	}

	err := s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		doc.Items = append(doc.Items, item)
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.Info("item created",
		zap.String("item_id", item.ID.String()),
		zap.String("category", string(item.Category)),
	)
	return item, nil
}

// Update edits raw field values only. The item keeps its category, and a
// loose item keeps its addon list even when the base unit changes.
func (s *Service) Update(ctx context.Context, req domain.UpdateItemRequest) (domain.Item, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Item{}, err
	}

	var updated domain.Item
	err = s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		item := doc.Item(id)
		if item == nil {
			return domain.ErrNotFound
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return domain.ErrInvalidName
			}
			item.Name = name
		}

		switch item.Category {
		case domain.CategoryFixed:
			if req.Price != nil {
				if !req.Price.IsPositive() {
					return domain.ErrInvalidPrice
				}
				item.Price = *req.Price
			}
			if req.Unit != nil {
				unit := strings.TrimSpace(*req.Unit)
				if unit == "" {
					return domain.ErrInvalidUnit
				}
				item.Unit = unit
			}
		case domain.CategoryLoose:
			if req.BasePrice != nil {
				if !req.BasePrice.IsPositive() {
					return domain.ErrInvalidBasePrice
				}
				item.BasePrice = *req.BasePrice
			}
			if req.BaseUnit != nil {
				if *req.BaseUnit != domain.BaseUnitLiter && *req.BaseUnit != domain.BaseUnitKg {
					return domain.ErrInvalidBaseUnit
				}
				item.BaseUnit = *req.BaseUnit
			}
		}

		updated = *item
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	return s.store.Update(ctx, func(doc *ledgerdomain.Document) error {
		for idx := range doc.Items {
			if doc.Items[idx].ID == id {
				doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (s *Service) List(ctx context.Context, req domain.ListItemsRequest) ([]domain.Item, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if req.Category == "" {
		return doc.Items, nil
	}

	items := make([]domain.Item, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.Category == req.Category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Item, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Item{}, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Item{}, err
	}

	item := doc.Item(id)
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
