package model

import "time"

// Account represents a purchaser as stored in the `accounts` table.  The
// account ID doubles as the JWT subject and as the account identifier
// passed to the payment and seat reservation services.
//
// Fields:
//
//	ID           – primary key identifier.
//	Email        – unique, lower-cased email address.
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
type Account struct {
	ID           int64     // accounts.id
	Email        string    // accounts.email
	PasswordHash string    // accounts.password_hash
	CreatedAt    time.Time // accounts.created_at
}
