// Package repository holds the MySQL data access code and the sentinel
// errors handlers use to pick a response status.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is already
// taken.  Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrAccountNotFound is returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")
