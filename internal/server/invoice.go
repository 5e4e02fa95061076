package server

import (
	"net/http"
	"strings"

	cartengine "github.com/PrimeDigitals001/Prototype-pos/internal/cart"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

type checkoutLine struct {
	ItemID   string `json:"item_id"`
	Kind     string `json:"kind"`
	Addon    string `json:"addon"`
	Quantity string `json:"quantity"`
}

type createInvoiceRequest struct {
	CustomerID string         `json:"customer_id"`
	Lines      []checkoutLine `json:"lines"`
	Paid       bool           `json:"paid"`
}

// CreateInvoice replays the submitted lines through the cart engine so
// every checkout passes the same pricing and validation rules.
func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if strings.TrimSpace(req.CustomerID) == "" {
		AbortWithError(c, cartengine.ErrCustomerRequired)
		return
	}

	cart := cartengine.New()
	for _, line := range req.Lines {
		item, err := s.catalogSvc.GetByID(c.Request.Context(), strings.TrimSpace(line.ItemID))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		switch strings.TrimSpace(line.Kind) {
		case "fixed":
			added, err := cart.AddFixed(item)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			if strings.TrimSpace(line.Quantity) != "" {
				cart.SetQuantity(added.ID, strings.TrimSpace(line.Quantity))
			}
		case "addon":
			if _, err := cart.AddLooseAddon(item, strings.TrimSpace(line.Addon)); err != nil {
				AbortWithError(c, err)
				return
			}
		case "manual":
			added, err := cart.AddLooseManual(item)
			if err != nil {
				AbortWithError(c, err)
				return
			}
			cart.SetQuantity(added.ID, strings.TrimSpace(line.Quantity))
		default:
			AbortWithError(c, newValidationError("kind", "invalid_line_kind", "invalid line kind"))
			return
		}
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateRequest{
		CustomerID: strings.TrimSpace(req.CustomerID),
		Cart:       cart,
		Paid:       req.Paid,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListInvoices(c *gin.Context) {
	resp, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListRequest{
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ToggleInvoicePayment(c *gin.Context) {
	resp, err := s.invoiceSvc.TogglePayment(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) InvoiceReceipt(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	customer, err := s.customerSvc.GetByID(c.Request.Context(), invoice.CustomerID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	pdf, err := s.receipts.Render(c.Request.Context(), invoice, customer)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="receipt-`+invoice.ID.String()+`.pdf"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", pdf, nil)
}
