package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel_reservation/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the tables if they do not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaSQL {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertHotel writes the hotel row, its room types, and replaces its
// room list wholesale. Rooms carry no state beyond identity, so a
// delete-and-reinsert keeps the ingest idempotent.
func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	if _, err := r.db.ExecContext(ctx, upsertHotelSQL, h.ID, h.Name); err != nil {
		return err
	}
	for _, rt := range h.RoomTypes {
		amen, _ := json.Marshal(rt.Amenities)
		feat, _ := json.Marshal(rt.Features)
		if _, err := r.db.ExecContext(ctx, upsertRoomTypeSQL,
			h.ID, rt.Code, rt.Description, string(amen), string(feat)); err != nil {
			return err
		}
	}

	if _, err := r.db.ExecContext(ctx, deleteRoomsSQL, h.ID); err != nil {
		return err
	}
	if len(h.Rooms) == 0 {
		return nil
	}
	values := make([]string, 0, len(h.Rooms))
	args := make([]any, 0, len(h.Rooms)*3)
	for _, rm := range h.Rooms {
		values = append(values, "(?,?,?)")
		args = append(args, h.ID, rm.RoomID, rm.RoomType)
	}
	_, err := r.db.ExecContext(ctx, insertRoomsPrefix+strings.Join(values, ","), args...)
	return err
}

// ReplaceBookings swaps the whole booking collection. Bookings have no
// identity of their own, so replacement is the only idempotent write.
func (r *Repo) ReplaceBookings(ctx context.Context, bs []domain.Booking) error {
	if _, err := r.db.ExecContext(ctx, deleteBookingsSQL); err != nil {
		return err
	}
	if len(bs) == 0 {
		return nil
	}
	values := make([]string, 0, len(bs))
	args := make([]any, 0, len(bs)*5)
	for _, b := range bs {
		values = append(values, "(?,?,?,?,?)")
		args = append(args,
			b.HotelID,
			b.Arrival.Format(domain.DateLayout),
			b.Departure.Format(domain.DateLayout),
			b.RoomType,
			b.RoomRate,
		)
	}
	_, err := r.db.ExecContext(ctx, insertBookingsPrefix+strings.Join(values, ","), args...)
	return err
}

// LoadHotels reads the full hotel inventory. Called once at startup; the
// result is handed to the in-memory store and never refreshed.
func (r *Repo) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, selectHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []domain.Hotel
	index := map[string]int{}
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, err
		}
		index[h.ID] = len(hotels)
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRoomTypes(ctx, hotels, index); err != nil {
		return nil, err
	}
	if err := r.loadRooms(ctx, hotels, index); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *Repo) loadRoomTypes(ctx context.Context, hotels []domain.Hotel, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, selectRoomTypesSQL)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			hotelID    string
			rt         domain.RoomType
			amen, feat []byte
		)
		if err := rows.Scan(&hotelID, &rt.Code, &rt.Description, &amen, &feat); err != nil {
			return err
		}
		if err := json.Unmarshal(amen, &rt.Amenities); err != nil {
			return fmt.Errorf("room type %s/%s: bad amenities: %w", hotelID, rt.Code, err)
		}
		if err := json.Unmarshal(feat, &rt.Features); err != nil {
			return fmt.Errorf("room type %s/%s: bad features: %w", hotelID, rt.Code, err)
		}
		if i, ok := index[hotelID]; ok {
			hotels[i].RoomTypes = append(hotels[i].RoomTypes, rt)
		}
	}
	return rows.Err()
}

func (r *Repo) loadRooms(ctx context.Context, hotels []domain.Hotel, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, selectRoomsSQL)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			hotelID string
			rm      domain.Room
		)
		if err := rows.Scan(&hotelID, &rm.RoomID, &rm.RoomType); err != nil {
			return err
		}
		if i, ok := index[hotelID]; ok {
			hotels[i].Rooms = append(hotels[i].Rooms, rm)
		}
	}
	return rows.Err()
}

// LoadBookings reads the full booking collection.
func (r *Repo) LoadBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, selectBookingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var (
			b        domain.Booking
			arr, dep string
		)
		if err := rows.Scan(&b.HotelID, &arr, &dep, &b.RoomType, &b.RoomRate); err != nil {
			return nil, err
		}
		if b.Arrival, err = time.Parse(domain.DateLayout, arr); err != nil {
			return nil, fmt.Errorf("booking for %s: bad arrival %q: %w", b.HotelID, arr, err)
		}
		if b.Departure, err = time.Parse(domain.DateLayout, dep); err != nil {
			return nil, fmt.Errorf("booking for %s: bad departure %q: %w", b.HotelID, dep, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
