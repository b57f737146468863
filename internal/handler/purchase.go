package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-service/internal/middleware"
	"github.com/iliyamo/ticket-service/internal/model"
	"github.com/iliyamo/ticket-service/internal/service"
)

// TicketPurchaser is the part of service.TicketService the handler needs.
type TicketPurchaser interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests ...model.TicketTypeRequest) (service.Receipt, error)
}

// PurchaseHandler exposes ticket prices and ticket purchases over HTTP.
type PurchaseHandler struct {
	Tickets TicketPurchaser
}

// NewPurchaseHandler returns a handler that buys tickets through tickets.
func NewPurchaseHandler(tickets TicketPurchaser) *PurchaseHandler {
	if tickets == nil {
		panic("nil purchaser passed to NewPurchaseHandler")
	}
	return &PurchaseHandler{Tickets: tickets}
}

type ticketLine struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type purchaseReq struct {
	Tickets []ticketLine `json:"tickets"`
}

type purchaseResp struct {
	AccountID   int64 `json:"account_id"`
	TotalAmount int   `json:"total_amount"`
	TotalSeats  int   `json:"total_seats"`
}

// Prices handles GET /v1/tickets/prices.  It lists the unit price of every
// ticket type and the per-purchase ticket limit.
func (h *PurchaseHandler) Prices(c echo.Context) error {
	prices := make(map[model.TicketType]int, len(model.TicketTypes))
	for _, t := range model.TicketTypes {
		prices[t] = service.UnitPrice(t)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"prices":      prices,
		"max_tickets": service.MaxTicketsPerPurchase,
	})
}

// Purchase handles POST /v1/tickets/purchase for the authenticated account.
// Rule violations return 400 with the reason; a failing payment or seat
// service returns 502.  On success it returns 201 with the totals charged.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var body purchaseReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	requests := make([]model.TicketTypeRequest, 0, len(body.Tickets))
	for _, line := range body.Tickets {
		t, err := model.ParseTicketType(line.Type)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket request", "type": line.Type})
		}
		r, err := model.NewTicketTypeRequest(t, line.Count)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket request", "type": line.Type})
		}
		requests = append(requests, r)
	}

	accountID := middleware.AccountID(c)
	rec, err := h.Tickets.PurchaseTickets(c.Request().Context(), accountID, requests...)
	if err != nil {
		var ipe *service.InvalidPurchaseError
		if errors.As(err, &ipe) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ipe.Reason})
		}
		log.Printf("purchase: account=%d failed: %v", accountID, err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "purchase failed"})
	}
	return c.JSON(http.StatusCreated, purchaseResp{
		AccountID:   rec.AccountID,
		TotalAmount: rec.TotalAmount,
		TotalSeats:  rec.TotalSeats,
	})
}
