package app_test

import (
	"context"
	"testing"
	"time"

	"hotel_reservation/internal/app"
	"hotel_reservation/internal/domain"
)

// ---- fakes ----

type fakeInv struct {
	hotels   []domain.Hotel
	bookings []domain.Booking
}

func (f *fakeInv) Hotel(id string) (domain.Hotel, bool) {
	for _, h := range f.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}
func (f *fakeInv) Hotels() []domain.Hotel     { return f.hotels }
func (f *fakeInv) Bookings() []domain.Booking { return f.bookings }

type fakeCache struct {
	store map[string]int
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*(dst.(*int)) = v
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]int{}
	}
	c.store[key] = v.(int)
	c.sets++
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func booking(t *testing.T, hotelID, arrival, departure, roomType string) domain.Booking {
	t.Helper()
	return domain.Booking{
		HotelID:   hotelID,
		Arrival:   date(t, arrival),
		Departure: date(t, departure),
		RoomType:  roomType,
		RoomRate:  "Standard",
	}
}

// testInv: H1 with two SGL rooms and one DBL room, one SGL booking for
// the nights of Sep 1 and Sep 2.
func testInv(t *testing.T) *fakeInv {
	t.Helper()
	return &fakeInv{
		hotels: []domain.Hotel{{
			ID:   "H1",
			Name: "Test Hotel",
			RoomTypes: []domain.RoomType{
				{Code: "SGL", Description: "Single Room", Amenities: []string{"WiFi"}, Features: []string{"Non-smoking"}},
				{Code: "DBL", Description: "Double Room", Amenities: []string{}, Features: []string{}},
			},
			Rooms: []domain.Room{
				{RoomID: "101", RoomType: "SGL"},
				{RoomID: "102", RoomType: "SGL"},
				{RoomID: "201", RoomType: "DBL"},
			},
		}},
		bookings: []domain.Booking{booking(t, "H1", "20240901", "20240903", "SGL")},
	}
}

// ---- tests ----

func TestCheckAvailability(t *testing.T) {
	svc := app.NewAvailabilityService(testInv(t), nil, 0, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		dateSpec string
		roomType string
		want     int
	}{
		{"booked first night", "20240901", "SGL", 1},
		{"booked second night", "20240902", "SGL", 1},
		{"departure day is free", "20240903", "SGL", 2},
		{"day before arrival is free", "20240831", "SGL", 2},
		{"after departure", "20240904", "SGL", 2},
		{"range overlapping booking", "20240901-20240902", "SGL", 1},
		{"range covering whole stay", "20240830-20240910", "SGL", 1},
		{"range ending on arrival", "20240830-20240901", "SGL", 2},
		{"other room type untouched", "20240901", "DBL", 1},
		{"unknown room type counts zero rooms", "20240901", "XXX", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.CheckAvailability(ctx, "H1", tc.dateSpec, tc.roomType)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCheckAvailability_UnknownHotel(t *testing.T) {
	svc := app.NewAvailabilityService(testInv(t), nil, 0, nil)

	_, err := svc.CheckAvailability(context.Background(), "H2", "20240901", "SGL")
	if err == nil {
		t.Fatalf("expected error for unknown hotel")
	}
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected KindNotFound, got %v (%v)", domain.KindOf(err), err)
	}
}

func TestCheckAvailability_BadDateSpec(t *testing.T) {
	svc := app.NewAvailabilityService(testInv(t), nil, 0, nil)

	_, err := svc.CheckAvailability(context.Background(), "H1", "2024/09/01", "SGL")
	if domain.KindOf(err) != domain.KindDateFormat {
		t.Fatalf("expected KindDateFormat, got %v", err)
	}
}

func TestCheckAvailability_NeverNegative(t *testing.T) {
	inv := testInv(t)
	// three bookings against two SGL rooms for the same night
	inv.bookings = append(inv.bookings,
		booking(t, "H1", "20240901", "20240902", "SGL"),
		booking(t, "H1", "20240901", "20240902", "SGL"),
	)
	svc := app.NewAvailabilityService(inv, nil, 0, nil)

	got, err := svc.CheckAvailability(context.Background(), "H1", "20240901", "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 0 {
		t.Fatalf("over-booked night must clamp to 0, got %d", got)
	}
}

func TestCheckAvailability_InvertedBookingNeverMatches(t *testing.T) {
	inv := testInv(t)
	inv.bookings = []domain.Booking{booking(t, "H1", "20240903", "20240901", "SGL")}
	svc := app.NewAvailabilityService(inv, nil, 0, nil)

	got, err := svc.CheckAvailability(context.Background(), "H1", "20240902", "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 2 {
		t.Fatalf("departure <= arrival booking must not reduce availability, got %d", got)
	}
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	svc := app.NewAvailabilityService(testInv(t), nil, 0, nil)
	ctx := context.Background()

	first, err := svc.CheckAvailability(ctx, "H1", "20240901-20240905", "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := svc.CheckAvailability(ctx, "H1", "20240901-20240905", "SGL")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if again != first {
			t.Fatalf("call %d: got %d, first call got %d", i, again, first)
		}
	}
}

func TestCheckAvailability_CacheHit(t *testing.T) {
	cache := &fakeCache{}
	svc := app.NewAvailabilityService(testInv(t), cache, 10*time.Minute, nil)
	ctx := context.Background()

	// Miss (populates cache)
	if _, err := svc.CheckAvailability(ctx, "H1", "20240901", "SGL"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache set, got %d", cache.sets)
	}

	// Hit (no second set)
	got, err := svc.CheckAvailability(ctx, "H1", "20240901", "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 1 || cache.sets != 1 {
		t.Fatalf("expected cached result 1 with no extra set, got %d (sets=%d)", got, cache.sets)
	}
}

func TestSearchPeriodsFrom_MergesEqualCounts(t *testing.T) {
	svc := app.NewAvailabilityService(testInv(t), nil, 0, nil)

	// Window 20240830..20240905: counts 2,2,1,1,2,2,2
	ps, err := svc.SearchPeriodsFrom(context.Background(), date(t, "20240830"), "H1", 7, "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	got := domain.FormatPeriods(ps)
	want := "(20240830-20240831, 2), (20240901-20240902, 1), (20240903-20240905, 2)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSearchPeriodsFrom_ZeroDaysSeparate(t *testing.T) {
	inv := &fakeInv{
		hotels: []domain.Hotel{{
			ID:        "H1",
			Name:      "Test Hotel",
			RoomTypes: []domain.RoomType{{Code: "SGL", Description: "Single Room", Amenities: []string{}, Features: []string{}}},
			Rooms:     []domain.Room{{RoomID: "101", RoomType: "SGL"}},
		}},
		bookings: []domain.Booking{booking(t, "H1", "20240902", "20240903", "SGL")},
	}
	svc := app.NewAvailabilityService(inv, nil, 0, nil)

	// Counts 1,0,1: the zero day separates two single-day periods.
	ps, err := svc.SearchPeriodsFrom(context.Background(), date(t, "20240901"), "H1", 3, "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	got := domain.FormatPeriods(ps)
	want := "(20240901, 1), (20240903, 1)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	for _, p := range ps {
		if p.Count == 0 {
			t.Fatalf("period with zero count reported: %v", p)
		}
	}
}

func TestSearchPeriodsFrom_AllZero(t *testing.T) {
	inv := &fakeInv{
		hotels: []domain.Hotel{{
			ID:        "H1",
			Name:      "Test Hotel",
			RoomTypes: []domain.RoomType{{Code: "SGL", Description: "Single Room", Amenities: []string{}, Features: []string{}}},
			Rooms:     nil, // no physical rooms at all
		}},
	}
	svc := app.NewAvailabilityService(inv, nil, 0, nil)

	ps, err := svc.SearchPeriodsFrom(context.Background(), date(t, "20240901"), "H1", 5, "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(ps) != 0 {
		t.Fatalf("expected no periods, got %v", ps)
	}
	if out := domain.FormatPeriods(ps); out != "" {
		t.Fatalf("expected empty string, got %q", out)
	}
}

func TestSearchAvailability_UsesInjectedClock(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 8, 30, 14, 52, 0, 0, time.UTC) }
	svc := app.NewAvailabilityService(testInv(t), nil, 0, now)

	got, err := svc.SearchAvailability(context.Background(), "H1", 3, "SGL")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// Time-of-day must not shift the window: 20240830..20240901.
	want := "(20240830-20240831, 2), (20240901, 1)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSearchPeriodsFrom_UnknownHotel(t *testing.T) {
	svc := app.NewAvailabilityService(testInv(t), nil, 0, nil)

	_, err := svc.SearchPeriodsFrom(context.Background(), date(t, "20240901"), "H9", 3, "SGL")
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
