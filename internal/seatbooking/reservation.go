// Package seatbooking allocates seats to an account once its tickets have
// been paid for.
package seatbooking

import (
	"context"
	"database/sql"
	"fmt"
)

// SeatReservationService reserves a number of seats for an account.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}

// MySQLService records seat allocations in the seat_reservations table.
type MySQLService struct {
	db *sql.DB
}

// NewMySQLService returns a MySQLService bound to db.
func NewMySQLService(db *sql.DB) *MySQLService {
	if db == nil {
		panic("nil db passed to NewMySQLService")
	}
	return &MySQLService{db: db}
}

// ReserveSeat inserts a single allocation row for accountID.
func (s *MySQLService) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	const q = `INSERT INTO seat_reservations (account_id, seat_count) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, q, accountID, totalSeatsToAllocate); err != nil {
		return fmt.Errorf("reserve seats: %w", err)
	}
	return nil
}
