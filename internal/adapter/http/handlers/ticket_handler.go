package handlers

import (
	"errors"
	"net/http"

	request "balanca_xpto/internal/adapter/http/dto/request"
	response "balanca_xpto/internal/adapter/http/dto/response"
	"balanca_xpto/internal/usecase"
	"balanca_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)

// TicketHandler handles HTTP requests for the weigh-ticket lifecycle.

type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	views, err := h.usecase.ListTickets(c.Request.Context())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTicketViews(views))
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.CreateTicket(c.Request.Context(), usecase.CreateTicketParams{
		TicketNo:    payload.TicketNo,
		VehicleID:   payload.VehicleID,
		VendorID:    payload.VendorID,
		ProductID:   payload.ProductID,
		PaymentType: payload.PaymentType,
		WeightIn:    payload.WeightIn,
		WeightOut:   payload.WeightOut,
		UnitPrice:   payload.UnitPrice,
		CreatedBy:   payload.CreatedBy,
		Remarks:     payload.Remarks,
	})
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

func (h *TicketHandler) ApproveTicket(c *gin.Context) {
	ticketID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.usecase.ApproveTicket(c.Request.Context(), ticketID)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID),
		errors.Is(err, usecase.ErrInvalidWeight),
		errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Vehicle, vendor or product does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPricingUnavailable):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "No active price for this product; supply unit_price or register a price first", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
