package service

import "github.com/iliyamo/ticket-service/internal/model"

// MaxTicketsPerPurchase caps the number of tickets bought in one call.
const MaxTicketsPerPurchase = 20

// Unit prices per ticket type.
const (
	AdultTicketPrice  = 20
	ChildTicketPrice  = 10
	InfantTicketPrice = 0
)

var unitPrices = map[model.TicketType]int{
	model.TicketAdult:  AdultTicketPrice,
	model.TicketChild:  ChildTicketPrice,
	model.TicketInfant: InfantTicketPrice,
}

// UnitPrice returns the price of a single ticket of type t.
func UnitPrice(t model.TicketType) int { return unitPrices[t] }

// occupiesSeat reports whether a ticket of type t needs its own seat.
func occupiesSeat(t model.TicketType) bool {
	return t == model.TicketAdult || t == model.TicketChild
}

// TotalPrice sums count * unit price over all requests.
func TotalPrice(requests ...model.TicketTypeRequest) int {
	total := 0
	for _, r := range requests {
		total += r.Count() * UnitPrice(r.Type())
	}
	return total
}

// TotalSeats counts the seats needed by requests.  Infants are not counted.
func TotalSeats(requests ...model.TicketTypeRequest) int {
	seats := 0
	for _, r := range requests {
		if occupiesSeat(r.Type()) {
			seats += r.Count()
		}
	}
	return seats
}

// TotalTickets sums the ticket count across requests.  Only call it on
// requests that passed validation; the sum is not overflow checked.
func TotalTickets(requests ...model.TicketTypeRequest) int {
	n := 0
	for _, r := range requests {
		n += r.Count()
	}
	return n
}
