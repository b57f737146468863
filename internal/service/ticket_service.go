// Package service holds the ticket purchase rules.  TicketService validates
// a purchase, prices it and hands the charge and the seat allocation to the
// payment and seat reservation services.
package service

import (
	"context"
	"log"

	"github.com/iliyamo/ticket-service/internal/model"
	"github.com/iliyamo/ticket-service/internal/paymentgateway"
	"github.com/iliyamo/ticket-service/internal/seatbooking"
)

// TicketService processes ticket purchases.  It keeps no state between
// calls.
type TicketService struct {
	payments paymentgateway.TicketPaymentService
	seats    seatbooking.SeatReservationService
}

// NewTicketService wires a TicketService to its collaborators.  Both must be
// non-nil.
func NewTicketService(payments paymentgateway.TicketPaymentService, seats seatbooking.SeatReservationService) *TicketService {
	if payments == nil || seats == nil {
		panic("nil collaborator passed to NewTicketService")
	}
	return &TicketService{payments: payments, seats: seats}
}

// Receipt summarises an accepted purchase.
type Receipt struct {
	AccountID   int64
	TotalAmount int
	TotalSeats  int
}

// PurchaseTickets validates the requests for accountID, charges the account
// and then reserves the seats.  Rule violations return an
// *InvalidPurchaseError before any collaborator is called.  Errors from the
// collaborators are returned unchanged; a failed payment skips the seat
// reservation, a failed reservation does not refund the payment.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID int64, requests ...model.TicketTypeRequest) (Receipt, error) {
	if err := validate(accountID, requests); err != nil {
		return Receipt{}, err
	}

	rec := Receipt{
		AccountID:   accountID,
		TotalAmount: TotalPrice(requests...),
		TotalSeats:  TotalSeats(requests...),
	}

	if err := s.payments.MakePayment(ctx, accountID, rec.TotalAmount); err != nil {
		return Receipt{}, err
	}
	if err := s.seats.ReserveSeat(ctx, accountID, rec.TotalSeats); err != nil {
		return Receipt{}, err
	}

	log.Printf("purchase: account=%d tickets=%d amount=%d seats=%d",
		accountID, TotalTickets(requests...), rec.TotalAmount, rec.TotalSeats)
	return rec, nil
}

// validate applies the purchase rules in order and stops at the first
// violation.
func validate(accountID int64, requests []model.TicketTypeRequest) error {
	if accountID <= 0 {
		return invalidPurchase(ReasonInvalidAccount)
	}
	if len(requests) == 0 {
		return invalidPurchase(ReasonNoTickets)
	}
	if !hasAdult(requests) {
		return invalidPurchase(ReasonNoAdult)
	}
	if exceedsTicketLimit(requests) {
		return invalidPurchase(ReasonTooManyTickets)
	}
	return nil
}

// exceedsTicketLimit stops summing as soon as the running total passes the
// limit, so huge counts cannot wrap the sum back under it.
func exceedsTicketLimit(requests []model.TicketTypeRequest) bool {
	n := 0
	for _, r := range requests {
		if r.Count() > MaxTicketsPerPurchase-n {
			return true
		}
		n += r.Count()
	}
	return false
}

func hasAdult(requests []model.TicketTypeRequest) bool {
	for _, r := range requests {
		if r.Type() == model.TicketAdult {
			return true
		}
	}
	return false
}
