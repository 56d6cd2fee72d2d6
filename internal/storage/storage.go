// Package storage defines the error kinds shared between the database
// layer and the HTTP handlers that map them to statuses.
package storage

import "errors"

var (
	ErrUserExists      = errors.New("username already taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrNotEnoughSlots  = errors.New("not enough slots available")
)
