package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "balanca_xpto/internal/adapter/http/dto/request"
	response "balanca_xpto/internal/adapter/http/dto/response"
	"balanca_xpto/internal/usecase"
	"balanca_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price payload", http.StatusBadRequest)
	errInvalidPathID       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id in path", http.StatusBadRequest)
	errInvalidDateParam    = pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
)

// PricingHandler handles HTTP requests for the product price timeline.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) ListPrices(c *gin.Context) {
	views, err := h.usecase.ListPrices(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceIntervalViews(views))
}

// UpsertPrice writes a price interval by its (product, effective date)
// natural key: an existing interval with the same key is replaced in place.
func (h *PricingHandler) UpsertPrice(c *gin.Context) {
	var payload request.PriceUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	effectiveDate, err := payload.ResolveEffectiveDate()
	if err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}
	toDate, err := payload.ResolveToDate()
	if err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.UpsertPrice(c.Request.Context(), usecase.UpsertPriceParams{
		ProductID:     payload.ProductID,
		EffectiveDate: effectiveDate,
		ToDate:        toDate,
		UnitPrice:     payload.UnitPrice,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPriceInterval(created))
}

func (h *PricingHandler) UpdatePrice(c *gin.Context) {
	priceID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	var payload request.PriceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	effectiveDate, err := payload.ResolveEffectiveDate()
	if err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}
	toDate, err := payload.ResolveToDate()
	if err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePrice(c.Request.Context(), priceID, usecase.UpdatePriceParams{
		ProductID:     payload.ProductID,
		EffectiveDate: effectiveDate,
		ToDate:        toDate,
		UnitPrice:     payload.UnitPrice,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceInterval(updated))
}

func (h *PricingHandler) DeletePrice(c *gin.Context) {
	priceID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.DeletePrice(c.Request.Context(), priceID); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewMessage("Price deleted successfully"))
}

// ResolveActivePrice answers which price is in force for a product on a
// date (query param, YYYY-MM-DD, defaults to today). 404 when no interval
// qualifies; that is an expected outcome, not a failure.
func (h *PricingHandler) ResolveActivePrice(c *gin.Context) {
	productID, ok := parsePathID(c, "productId")
	if !ok {
		return
	}

	var asOf *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(errInvalidDateParam.HTTPStatus, errInvalidDateParam.ToHTTPError())
			return
		}
		asOf = &parsed
	}

	view, err := h.usecase.ResolveActivePrice(c.Request.Context(), productID, asOf)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceIntervalView(view))
}

func parsePathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidPriceID),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOverlappingInterval):
		return pkg.NewDomainErrorSimple("OVERLAPPING_INTERVAL", "Price interval overlaps an existing interval for this product", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "Price interval not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActivePrice):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_PRICE", "No active price found for this product on the specified date", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
