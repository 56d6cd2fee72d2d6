package models

import "time"

type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	BookedSlots int       `json:"booked_slots"`
	CreatedAt   time.Time `json:"created_at"`
}

// Remaining returns the number of slots still available for booking.
func (e *Event) Remaining() int {
	return e.Capacity - e.BookedSlots
}

// HasRoomFor reports whether a booking of the given size still fits.
func (e *Event) HasRoomFor(slots int) bool {
	return slots > 0 && e.Remaining() >= slots
}
