package server

import (
	"net/http"
	"strings"

	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Prices arrive as strings so handlers never round-trip amounts through
// floats.
type createItemRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Unit      string `json:"unit"`
	BasePrice string `json:"basePrice"`
	BaseUnit  string `json:"baseUnit"`
}

func (s *Server) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	create := catalogdomain.CreateItemRequest{
		Name:     strings.TrimSpace(req.Name),
		Category: catalogdomain.Category(strings.TrimSpace(req.Category)),
		Unit:     strings.TrimSpace(req.Unit),
		BaseUnit: catalogdomain.BaseUnit(strings.TrimSpace(req.BaseUnit)),
	}

	if strings.TrimSpace(req.Price) != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
		if err != nil {
			AbortWithError(c, newValidationError("price", "invalid_price", "invalid price"))
			return
		}
		create.Price = price
	}
	if strings.TrimSpace(req.BasePrice) != "" {
		basePrice, err := decimal.NewFromString(strings.TrimSpace(req.BasePrice))
		if err != nil {
			AbortWithError(c, newValidationError("basePrice", "invalid_base_price", "invalid base price"))
			return
		}
		create.BasePrice = basePrice
	}

	resp, err := s.catalogSvc.Create(c.Request.Context(), create)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListItems(c *gin.Context) {
	resp, err := s.catalogSvc.List(c.Request.Context(), catalogdomain.ListItemsRequest{
		Category: catalogdomain.Category(strings.TrimSpace(c.Query("category"))),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetItemByID(c *gin.Context) {
	resp, err := s.catalogSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateItemRequest struct {
	Name      *string `json:"name"`
	Price     *string `json:"price"`
	Unit      *string `json:"unit"`
	BasePrice *string `json:"basePrice"`
	BaseUnit  *string `json:"baseUnit"`
}

func (s *Server) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := catalogdomain.UpdateItemRequest{
		ID:   strings.TrimSpace(c.Param("id")),
		Name: req.Name,
		Unit: req.Unit,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*req.Price))
		if err != nil {
			AbortWithError(c, newValidationError("price", "invalid_price", "invalid price"))
			return
		}
		update.Price = &price
	}
	if req.BasePrice != nil {
		basePrice, err := decimal.NewFromString(strings.TrimSpace(*req.BasePrice))
		if err != nil {
			AbortWithError(c, newValidationError("basePrice", "invalid_base_price", "invalid base price"))
			return
		}
		update.BasePrice = &basePrice
	}
	if req.BaseUnit != nil {
		baseUnit := catalogdomain.BaseUnit(strings.TrimSpace(*req.BaseUnit))
		update.BaseUnit = &baseUnit
	}

	resp, err := s.catalogSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteItem(c *gin.Context) {
	if err := s.catalogSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
