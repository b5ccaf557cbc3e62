package domain

import "time"

// DateLayout is the wire format for all calendar dates (YYYYMMDD).
const DateLayout = "20060102"

// Booking is a reservation of one room of a given type for the half-open
// interval [Arrival, Departure). Bookings carry no identity of their own;
// overlap counting treats the collection as an unordered multiset.
//
// A booking whose Departure is not after its Arrival is tolerated: it can
// never satisfy the overlap test, so it simply never reduces availability.
type Booking struct {
	HotelID   string
	Arrival   time.Time
	Departure time.Time
	RoomType  string
	RoomRate  string
}

// Overlaps reports whether the booking intersects the half-open interval
// [start, end): arrival < end AND departure > start.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.Arrival.Before(end) && b.Departure.After(start)
}
