package app

import (
	"context"
	"fmt"
	"time"

	"hotel_reservation/internal/domain"
)

// AvailabilityService answers room-availability queries against the
// loaded inventory. The data never changes during a run, so results for
// identical inputs are cacheable for the whole process lifetime; the TTL
// only bounds memory in the shared cache.
type AvailabilityService struct {
	inv      domain.Inventory
	cache    domain.Cache // optional
	cacheTTL time.Duration
	now      func() time.Time
}

func NewAvailabilityService(inv domain.Inventory, cache domain.Cache, ttl time.Duration, now func() time.Time) *AvailabilityService {
	if now == nil {
		now = time.Now
	}
	return &AvailabilityService{inv: inv, cache: cache, cacheTTL: ttl, now: now}
}

// CheckAvailability returns how many rooms of roomType are free in the
// hotel over the interval described by dateSpec (one date = one night,
// "start-end" = [start, end)). Unknown hotels fail with a not-found
// error; unknown room types just count zero rooms.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, hotelID, dateSpec, roomType string) (int, error) {
	start, end, err := ParseDateSpec(dateSpec)
	if err != nil {
		return 0, err
	}
	return s.checkInterval(ctx, hotelID, roomType, start, end)
}

func (s *AvailabilityService) checkInterval(ctx context.Context, hotelID, roomType string, start, end time.Time) (int, error) {
	key := fmt.Sprintf("avail:%s:%s:%s:%s",
		hotelID, start.Format(domain.DateLayout), end.Format(domain.DateLayout), roomType)
	if s.cache != nil {
		var n int
		if ok, _ := s.cache.Get(ctx, key, &n); ok {
			return n, nil
		}
	}

	hotel, ok := s.inv.Hotel(hotelID)
	if !ok {
		return 0, domain.NewNotFound("hotel %s not found", hotelID)
	}

	total := hotel.RoomCount(roomType)
	overlapping := 0
	for _, b := range s.inv.Bookings() {
		if b.HotelID == hotelID && b.RoomType == roomType && b.Overlaps(start, end) {
			overlapping++
		}
	}

	// Over-booked data is tolerated; never report a negative count.
	n := total - overlapping
	if n < 0 {
		n = 0
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, n, int(s.cacheTTL.Seconds()))
	}
	return n, nil
}

// SearchAvailability scans a window of days starting at the injected
// clock's current date and returns the compressed periods as a formatted
// string, e.g. "(20240901-20240903, 2), (20240905, 1)".
func (s *AvailabilityService) SearchAvailability(ctx context.Context, hotelID string, days int, roomType string) (string, error) {
	ps, err := s.SearchPeriodsFrom(ctx, s.now(), hotelID, days, roomType)
	if err != nil {
		return "", err
	}
	return domain.FormatPeriods(ps), nil
}

// SearchPeriodsFrom computes per-day availability for `days` consecutive
// dates starting at `from` and run-length-encodes the counts into maximal
// runs of constant positive availability. Zero-count days separate runs
// and are never reported. Period bounds are inclusive on both ends.
func (s *AvailabilityService) SearchPeriodsFrom(ctx context.Context, from time.Time, hotelID string, days int, roomType string) ([]domain.Period, error) {
	first := truncateDay(from)

	var (
		periods []domain.Period
		open    bool
		start   time.Time
		count   int
		day     time.Time
	)
	for i := 0; i < days; i++ {
		day = first.AddDate(0, 0, i)
		n, err := s.checkInterval(ctx, hotelID, roomType, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		switch {
		case n > 0 && !open:
			open, start, count = true, day, n
		case n > 0 && n != count:
			periods = append(periods, domain.Period{Start: start, End: day.AddDate(0, 0, -1), Count: count})
			start, count = day, n
		case n == 0 && open:
			periods = append(periods, domain.Period{Start: start, End: day.AddDate(0, 0, -1), Count: count})
			open = false
		}
	}
	if open {
		periods = append(periods, domain.Period{Start: start, End: day, Count: count})
	}
	return periods, nil
}

// truncateDay drops the time-of-day component, keeping only the calendar
// date. Inventory dates parse as UTC midnights, so query days must too.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
