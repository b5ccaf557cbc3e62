package app

import (
	"strconv"
	"strings"
	"time"

	"hotel_reservation/internal/domain"
)

// ParseDate parses a strict YYYYMMDD date. The string must be exactly 8
// ASCII digits and denote a real calendar date; anything else is a
// date-format failure, never a silent false.
func ParseDate(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, domain.NewDateFormat("date must be in YYYYMMDD format")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, domain.NewDateFormat("date must be in YYYYMMDD format")
		}
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewDateFormat("invalid date: %s", s)
	}
	return t, nil
}

// ValidateDate checks date syntax without keeping the parsed value.
func ValidateDate(s string) error {
	_, err := ParseDate(s)
	return err
}

// ParseDateSpec resolves a date spec into a half-open interval [start, end).
// A bare date occupies exactly one night; "start-end" keeps the end
// exclusive.
func ParseDateSpec(spec string) (start, end time.Time, err error) {
	if i := strings.IndexByte(spec, '-'); i >= 0 {
		start, err = ParseDate(spec[:i])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err = ParseDate(spec[i+1:])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}
	start, err = ParseDate(spec)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// ValidateDateSpec checks a single date or a dash-separated range.
func ValidateDateSpec(spec string) error {
	_, _, err := ParseDateSpec(spec)
	return err
}

// ValidateHotelID is a boolean membership test; absence is not an error.
func ValidateHotelID(inv domain.Inventory, id string) bool {
	_, ok := inv.Hotel(id)
	return ok
}

// ValidateRoomType reports whether the named hotel declares the room type.
// False, not a failure, when the hotel itself is unknown.
func ValidateRoomType(inv domain.Inventory, hotelID, roomType string) bool {
	h, ok := inv.Hotel(hotelID)
	if !ok {
		return false
	}
	return h.HasRoomType(roomType)
}

// ParseDays parses the search window length: a positive integer.
func ParseDays(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidation("days must be a valid number")
	}
	if n <= 0 {
		return 0, domain.NewValidation("days must be a positive number")
	}
	return n, nil
}
