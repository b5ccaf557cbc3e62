package domain

// RoomType describes one category of room within a hotel.
type RoomType struct {
	Code        string
	Description string
	Amenities   []string
	Features    []string
}

// Room is a single physical room. RoomType references a RoomType.Code
// of the same hotel.
type Room struct {
	RoomID   string
	RoomType string
}

type Hotel struct {
	ID        string
	Name      string
	RoomTypes []RoomType
	Rooms     []Room
}

// RoomCount returns how many physical rooms of the given type the hotel
// has. Zero for an unknown type code.
func (h Hotel) RoomCount(roomType string) int {
	n := 0
	for _, r := range h.Rooms {
		if r.RoomType == roomType {
			n++
		}
	}
	return n
}

// HasRoomType reports whether the hotel declares the given room type code.
func (h Hotel) HasRoomType(code string) bool {
	for _, rt := range h.RoomTypes {
		if rt.Code == code {
			return true
		}
	}
	return false
}
