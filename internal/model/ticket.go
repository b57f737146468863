package model

import (
	"errors"
	"strings"
)

// TicketType is the category of a ticket.  Adults and children occupy a
// seat each; infants sit on an adult's lap.
type TicketType string

const (
	TicketAdult  TicketType = "ADULT"
	TicketChild  TicketType = "CHILD"
	TicketInfant TicketType = "INFANT"
)

// TicketTypes lists every known ticket type in display order.
var TicketTypes = []TicketType{TicketAdult, TicketChild, TicketInfant}

var (
	ErrUnknownTicketType  = errors.New("unknown ticket type")
	ErrInvalidTicketCount = errors.New("ticket count must be positive")
)

// Valid reports whether t is one of the known ticket types.
func (t TicketType) Valid() bool {
	switch t {
	case TicketAdult, TicketChild, TicketInfant:
		return true
	}
	return false
}

// ParseTicketType converts a case-insensitive name such as "adult" into a
// TicketType.
func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrUnknownTicketType
	}
	return t, nil
}

// TicketTypeRequest asks for count tickets of a single type.  The fields
// are unexported so a request cannot change after construction.
type TicketTypeRequest struct {
	ticketType TicketType
	count      int
}

// NewTicketTypeRequest builds a request for count tickets of type t.
func NewTicketTypeRequest(t TicketType, count int) (TicketTypeRequest, error) {
	if !t.Valid() {
		return TicketTypeRequest{}, ErrUnknownTicketType
	}
	if count <= 0 {
		return TicketTypeRequest{}, ErrInvalidTicketCount
	}
	return TicketTypeRequest{ticketType: t, count: count}, nil
}

// Type returns the requested ticket type.
func (r TicketTypeRequest) Type() TicketType { return r.ticketType }

// Count returns how many tickets of Type are requested.
func (r TicketTypeRequest) Count() int { return r.count }
