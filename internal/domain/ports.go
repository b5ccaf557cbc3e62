package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Inventory is the read port over the loaded hotel and booking data.
// Implementations are populated once at startup and never mutated, so
// they may be shared freely between callers.
type Inventory interface {
	// Hotel returns the hotel with the given id, or false if unknown.
	Hotel(id string) (Hotel, bool)
	Hotels() []Hotel
	Bookings() []Booking
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models

// Period is a maximal run of consecutive days sharing the same positive
// availability count. Start and End are both inclusive; a single-day
// period has Start == End.
type Period struct {
	Start time.Time
	End   time.Time
	Count int
}

func (p Period) String() string {
	s := p.Start.Format(DateLayout)
	e := p.End.Format(DateLayout)
	if s == e {
		return fmt.Sprintf("(%s, %d)", s, p.Count)
	}
	return fmt.Sprintf("(%s-%s, %d)", s, e, p.Count)
}

// FormatPeriods joins periods in chronological order with ", ".
// An empty slice yields an empty string.
func FormatPeriods(ps []Period) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
