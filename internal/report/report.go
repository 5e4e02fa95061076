// Package report aggregates sales figures for the dashboard.
package report

import (
	"context"
	"errors"
	"time"

	"github.com/PrimeDigitals001/Prototype-pos/internal/clock"
	ledgerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/ledger/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidPeriod = errors.New("invalid_period")

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// Overview is the rollup of invoices whose date falls inside the period.
type Overview struct {
	Period          Period          `json:"period"`
	Collection      decimal.Decimal `json:"collection"`
	ItemsSold       decimal.Decimal `json:"itemsSold"`
	UniqueCustomers int             `json:"uniqueCustomers"`
	InvoiceCount    int             `json:"invoiceCount"`
}

type Params struct {
	fx.In

	Store ledgerdomain.Store
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	store ledgerdomain.Store
	log   *zap.Logger
	clock clock.Clock
}

func New(p Params) *Service {
	return &Service{
		store: p.Store,
		log:   p.Log.Named("report.service"),
		clock: p.Clock,
	}
}

func (s *Service) Overview(ctx context.Context, period Period) (Overview, error) {
	start, end, err := s.bounds(period)
	if err != nil {
		return Overview{}, err
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		Period:     period,
		Collection: decimal.Zero,
		ItemsSold:  decimal.Zero,
	}
	customers := make(map[string]struct{})

	for _, invoice := range doc.Invoices {
		if invoice.Date.Before(start) || !invoice.Date.Before(end) {
			continue
		}

		overview.InvoiceCount++
		overview.Collection = overview.Collection.Add(invoice.Total)
		customers[invoice.CustomerID.String()] = struct{}{}
		for _, line := range invoice.Lines {
			overview.ItemsSold = overview.ItemsSold.Add(line.Quantity)
		}
	}

	overview.UniqueCustomers = len(customers)
	return overview, nil
}

func (s *Service) bounds(period Period) (time.Time, time.Time, error) {
	now := s.clock.Now()
	switch period {
	case PeriodDaily:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), nil
	case PeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

var Module = fx.Module("report.service",
	fx.Provide(New),
)
