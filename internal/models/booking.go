package models

import "time"

type Booking struct {
	ID        int       `json:"id"`
	EventID   int       `json:"event_id"`
	UserID    int       `json:"user_id"`
	Slots     int       `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
}

// UserBooking is a booking joined with its event, as returned by the
// "my bookings" listing.
type UserBooking struct {
	Booking
	Event Event `json:"event"`
}

// EventBooking is one booking of an event joined with the user who owns
// it, as returned by the per-event bookings listing.
type EventBooking struct {
	BookingID int    `json:"booking_id"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Slots     int    `json:"slots"`
}
