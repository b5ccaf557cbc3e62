package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"hotel_reservation/internal/domain"
)

// Wire records. Decoding is strict: missing required fields abort the
// load. Only the nested amenities/features lists may be absent; they
// default to empty.

type roomTypeRecord struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Features    []string `json:"features"`
}

type roomRecord struct {
	RoomType string `json:"roomType"`
	RoomID   string `json:"roomId"`
}

type hotelRecord struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	RoomTypes []roomTypeRecord `json:"roomTypes"`
	Rooms     []roomRecord     `json:"rooms"`
}

type bookingRecord struct {
	HotelID   string `json:"hotelId"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	RoomType  string `json:"roomType"`
	RoomRate  string `json:"roomRate"`
}

// DecodeHotels reads a JSON array of hotel records.
func DecodeHotels(r io.Reader) ([]domain.Hotel, error) {
	var recs []hotelRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode hotels: %w", err)
	}
	hotels := make([]domain.Hotel, 0, len(recs))
	for i, rec := range recs {
		if rec.ID == "" {
			return nil, fmt.Errorf("hotel[%d]: missing id", i)
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("hotel %s: missing name", rec.ID)
		}
		h := domain.Hotel{
			ID:        rec.ID,
			Name:      rec.Name,
			RoomTypes: make([]domain.RoomType, 0, len(rec.RoomTypes)),
			Rooms:     make([]domain.Room, 0, len(rec.Rooms)),
		}
		for _, rt := range rec.RoomTypes {
			if rt.Code == "" {
				return nil, fmt.Errorf("hotel %s: room type with missing code", rec.ID)
			}
			if rt.Description == "" {
				return nil, fmt.Errorf("hotel %s: room type %s: missing description", rec.ID, rt.Code)
			}
			amenities := rt.Amenities
			if amenities == nil {
				amenities = []string{}
			}
			features := rt.Features
			if features == nil {
				features = []string{}
			}
			h.RoomTypes = append(h.RoomTypes, domain.RoomType{
				Code:        rt.Code,
				Description: rt.Description,
				Amenities:   amenities,
				Features:    features,
			})
		}
		for _, rm := range rec.Rooms {
			if rm.RoomID == "" || rm.RoomType == "" {
				return nil, fmt.Errorf("hotel %s: room with missing roomId or roomType", rec.ID)
			}
			h.Rooms = append(h.Rooms, domain.Room{RoomID: rm.RoomID, RoomType: rm.RoomType})
		}
		hotels = append(hotels, h)
	}
	return hotels, nil
}

// DecodeBookings reads a JSON array of booking records. All fields are
// required and dates must be real YYYYMMDD dates; relative ordering of
// arrival and departure is not checked.
func DecodeBookings(r io.Reader) ([]domain.Booking, error) {
	var recs []bookingRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	bookings := make([]domain.Booking, 0, len(recs))
	for i, rec := range recs {
		if rec.HotelID == "" || rec.Arrival == "" || rec.Departure == "" || rec.RoomType == "" || rec.RoomRate == "" {
			return nil, fmt.Errorf("booking[%d]: missing required field", i)
		}
		arr, err := time.Parse(domain.DateLayout, rec.Arrival)
		if err != nil {
			return nil, fmt.Errorf("booking[%d]: bad arrival %q: %w", i, rec.Arrival, err)
		}
		dep, err := time.Parse(domain.DateLayout, rec.Departure)
		if err != nil {
			return nil, fmt.Errorf("booking[%d]: bad departure %q: %w", i, rec.Departure, err)
		}
		bookings = append(bookings, domain.Booking{
			HotelID:   rec.HotelID,
			Arrival:   arr,
			Departure: dep,
			RoomType:  rec.RoomType,
			RoomRate:  rec.RoomRate,
		})
	}
	return bookings, nil
}

// LoadFiles builds a Store from the two JSON data files.
func LoadFiles(hotelsPath, bookingsPath string) (*Store, error) {
	hf, err := os.Open(hotelsPath)
	if err != nil {
		return nil, fmt.Errorf("open hotels file: %w", err)
	}
	defer hf.Close()
	hotels, err := DecodeHotels(hf)
	if err != nil {
		return nil, err
	}

	bf, err := os.Open(bookingsPath)
	if err != nil {
		return nil, fmt.Errorf("open bookings file: %w", err)
	}
	defer bf.Close()
	bookings, err := DecodeBookings(bf)
	if err != nil {
		return nil, err
	}

	return New(hotels, bookings), nil
}
