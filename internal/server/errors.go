package server

import (
	"errors"
	"net/http"
	"strings"

	cartengine "github.com/PrimeDigitals001/Prototype-pos/internal/cart"
	catalogdomain "github.com/PrimeDigitals001/Prototype-pos/internal/catalog/domain"
	customerdomain "github.com/PrimeDigitals001/Prototype-pos/internal/customer/domain"
	invoicedomain "github.com/PrimeDigitals001/Prototype-pos/internal/invoice/domain"
	"github.com/PrimeDigitals001/Prototype-pos/internal/report"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, customerdomain.ErrHasInvoices):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isCustomerValidationError(err),
		isCatalogValidationError(err),
		isCartValidationError(err),
		errors.Is(err, invoicedomain.ErrInvalidID),
		errors.Is(err, report.ErrInvalidPeriod):
		return true
	default:
		return false
	}
}

func isCustomerValidationError(err error) bool {
	return errors.Is(err, customerdomain.ErrInvalidName) ||
		errors.Is(err, customerdomain.ErrInvalidPhone) ||
		errors.Is(err, customerdomain.ErrInvalidShift) ||
		errors.Is(err, customerdomain.ErrInvalidID)
}

func isCatalogValidationError(err error) bool {
	return errors.Is(err, catalogdomain.ErrInvalidName) ||
		errors.Is(err, catalogdomain.ErrInvalidCategory) ||
		errors.Is(err, catalogdomain.ErrInvalidPrice) ||
		errors.Is(err, catalogdomain.ErrInvalidUnit) ||
		errors.Is(err, catalogdomain.ErrInvalidBasePrice) ||
		errors.Is(err, catalogdomain.ErrInvalidBaseUnit) ||
		errors.Is(err, catalogdomain.ErrInvalidID)
}

func isCartValidationError(err error) bool {
	return errors.Is(err, cartengine.ErrEmptyCart) ||
		errors.Is(err, cartengine.ErrManualQuantity) ||
		errors.Is(err, cartengine.ErrWrongCategory) ||
		errors.Is(err, cartengine.ErrUnknownAddon) ||
		errors.Is(err, cartengine.ErrCustomerRequired)
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}
