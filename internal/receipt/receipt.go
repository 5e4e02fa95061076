// Package receipt renders stored invoices as printable PDF receipts.
package receipt

import (
	"bytes"
	"context"
	"io"

	"github.com/PrimeDigitals001/Prototype-pos/internal/config"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	"github.com/johnfercher/maroto/v2"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Settings *config.SettingsHolder
}

type Renderer struct {
	settings *config.SettingsHolder
}

func New(p Params) *Renderer {
	return &Renderer{settings: p.Settings}
}

func (r *Renderer) Render(ctx context.Context, invoice invoicedomain.Invoice, customer customerdomain.Customer) (io.Reader, error) {
	settings := r.settings.Get()
	currency := settings.CurrencySymbol

	cfg := marotoconfig.NewBuilder().Build()
	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, settings.ShopName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	status := "UNPAID"
	if invoice.Paid {
		status = "PAID"
	}

	m.AddRow(20,
		col.New(6).Add(
			text.New("Receipt #"+invoice.ID.String(), props.Text{Top: 0}),
			text.New("Date: "+invoice.Date.Format("02 Jan 2006 15:04"), props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Customer: "+customer.Name, props.Text{Top: 0, Align: align.Right}),
			text.New(status, props.Text{Top: 5, Style: fontstyle.Bold, Align: align.Right}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range invoice.Lines {
		m.AddRow(8,
			text.NewCol(6, line.Name, props.Text{Size: 9}),
			text.NewCol(2, line.Quantity.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, currency+line.UnitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, currency+line.Total.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, currency+invoice.Total.StringFixed(2), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)

	if settings.ReceiptFooter != "" {
		m.AddRow(15,
			text.NewCol(12, settings.ReceiptFooter, props.Text{
				Size:  8,
				Top:   5,
				Align: align.Center,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

var Module = fx.Module("receipt",
	fx.Provide(New),
)
