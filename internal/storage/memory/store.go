package memory

import (
	"hotel_reservation/internal/domain"
)

// Store holds the full inventory in memory. It is built once at startup
// and is read-only afterwards, so it is safe to share without locking.
type Store struct {
	hotels   []domain.Hotel
	byID     map[string]int
	bookings []domain.Booking
}

func New(hotels []domain.Hotel, bookings []domain.Booking) *Store {
	byID := make(map[string]int, len(hotels))
	for i, h := range hotels {
		byID[h.ID] = i
	}
	return &Store{hotels: hotels, byID: byID, bookings: bookings}
}

func (s *Store) Hotel(id string) (domain.Hotel, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return s.hotels[i], true
}

func (s *Store) Hotels() []domain.Hotel { return s.hotels }

func (s *Store) Bookings() []domain.Booking { return s.bookings }
