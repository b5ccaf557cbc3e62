package app_test

import (
	"testing"

	"hotel_reservation/internal/app"
	"hotel_reservation/internal/domain"
)

func TestValidateDate(t *testing.T) {
	valid := []string{"20240901", "20241231", "20240229"} // 2024 is a leap year
	for _, s := range valid {
		if err := app.ValidateDate(s); err != nil {
			t.Errorf("ValidateDate(%q): unexpected error %v", s, err)
		}
	}

	invalid := []string{
		"2024090",   // 7 digits
		"202409011", // 9 digits
		"2024/09/01",
		"2024090a",
		"20241301", // month 13
		"20240230", // Feb 30
		"20230229", // not a leap year
		"",
	}
	for _, s := range invalid {
		err := app.ValidateDate(s)
		if err == nil {
			t.Errorf("ValidateDate(%q): expected error", s)
			continue
		}
		if domain.KindOf(err) != domain.KindDateFormat {
			t.Errorf("ValidateDate(%q): expected KindDateFormat, got %v", s, err)
		}
	}
}

func TestParseDateSpec(t *testing.T) {
	start, end, err := app.ParseDateSpec("20240901")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if start.Format(domain.DateLayout) != "20240901" || end.Format(domain.DateLayout) != "20240902" {
		t.Fatalf("single date must become a one-night interval, got [%v, %v)", start, end)
	}

	start, end, err = app.ParseDateSpec("20240901-20240905")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if start.Format(domain.DateLayout) != "20240901" || end.Format(domain.DateLayout) != "20240905" {
		t.Fatalf("range end must stay exclusive, got [%v, %v)", start, end)
	}

	for _, s := range []string{"20240901-", "-20240905", "20240901-2024", "20240901-20241332"} {
		if _, _, err := app.ParseDateSpec(s); domain.KindOf(err) != domain.KindDateFormat {
			t.Errorf("ParseDateSpec(%q): expected KindDateFormat, got %v", s, err)
		}
	}
}

func TestValidateHotelAndRoomType(t *testing.T) {
	inv := testInv(t)

	if !app.ValidateHotelID(inv, "H1") {
		t.Errorf("H1 should exist")
	}
	if app.ValidateHotelID(inv, "H2") {
		t.Errorf("H2 should not exist")
	}

	if !app.ValidateRoomType(inv, "H1", "SGL") {
		t.Errorf("SGL should exist in H1")
	}
	if app.ValidateRoomType(inv, "H1", "SUITE") {
		t.Errorf("SUITE should not exist in H1")
	}
	// unknown hotel is false, not a failure
	if app.ValidateRoomType(inv, "H2", "SGL") {
		t.Errorf("room type of unknown hotel must be false")
	}
}

func TestParseDays(t *testing.T) {
	n, err := app.ParseDays("365")
	if err != nil || n != 365 {
		t.Fatalf("got %d, %v", n, err)
	}

	for _, s := range []string{"0", "-3", "abc", "", "3.5"} {
		if _, err := app.ParseDays(s); domain.KindOf(err) != domain.KindValidation {
			t.Errorf("ParseDays(%q): expected KindValidation, got %v", s, err)
		}
	}
}
