package service

import "errors"

// ErrInvalidPurchase matches every InvalidPurchaseError via errors.Is.
var ErrInvalidPurchase = errors.New("invalid purchase")

// Reasons carried by InvalidPurchaseError.
const (
	ReasonInvalidAccount = "Invalid account id"
	ReasonNoTickets      = "Invalid TicketTypeRequest"
	ReasonNoAdult        = "Can not buy tickets without Adult(s)"
	ReasonTooManyTickets = "Can not buy more than 20 tickets at a time"
)

// InvalidPurchaseError is returned when a purchase breaks one of the
// eligibility rules.  Reason is safe to show to the purchaser.
type InvalidPurchaseError struct {
	Reason string
}

func (e *InvalidPurchaseError) Error() string { return e.Reason }

func (e *InvalidPurchaseError) Is(target error) bool { return target == ErrInvalidPurchase }

func invalidPurchase(reason string) error { return &InvalidPurchaseError{Reason: reason} }
