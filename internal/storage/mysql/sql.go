package mysql

// Dates are stored in the YYYYMMDD wire format; all overlap arithmetic
// happens in the engine, never in SQL.

var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
  id   VARCHAR(64)  NOT NULL PRIMARY KEY,
  name VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS room_types (
  hotel_id    VARCHAR(64)  NOT NULL,
  code        VARCHAR(32)  NOT NULL,
  description VARCHAR(255) NOT NULL,
  amenities   JSON         NOT NULL,
  features    JSON         NOT NULL,
  PRIMARY KEY (hotel_id, code)
)`,
	`CREATE TABLE IF NOT EXISTS rooms (
  hotel_id  VARCHAR(64) NOT NULL,
  room_id   VARCHAR(64) NOT NULL,
  room_type VARCHAR(32) NOT NULL,
  PRIMARY KEY (hotel_id, room_id)
)`,
	`CREATE TABLE IF NOT EXISTS bookings (
  hotel_id  VARCHAR(64) NOT NULL,
  arrival   CHAR(8)     NOT NULL,
  departure CHAR(8)     NOT NULL,
  room_type VARCHAR(32) NOT NULL,
  room_rate VARCHAR(64) NOT NULL,
  KEY idx_bookings_hotel_type (hotel_id, room_type)
)`,
}

const upsertHotelSQL = `
INSERT INTO hotels (id, name)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  name = VALUES(name)
`

const upsertRoomTypeSQL = `
INSERT INTO room_types (hotel_id, code, description, amenities, features)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  description = VALUES(description),
  amenities   = VALUES(amenities),
  features    = VALUES(features)
`

const deleteRoomsSQL = `DELETE FROM rooms WHERE hotel_id = ?`

const insertRoomsPrefix = `INSERT INTO rooms (hotel_id, room_id, room_type) VALUES `

const deleteBookingsSQL = `DELETE FROM bookings`

const insertBookingsPrefix = `INSERT INTO bookings (hotel_id, arrival, departure, room_type, room_rate) VALUES `

// -----------------------------------------------------------------------------
// READ QUERIES (bulk loads at startup)
// -----------------------------------------------------------------------------

const selectHotelsSQL = `SELECT id, name FROM hotels ORDER BY id`

const selectRoomTypesSQL = `
SELECT hotel_id, code, description, amenities, features
FROM room_types
ORDER BY hotel_id, code`

const selectRoomsSQL = `SELECT hotel_id, room_id, room_type FROM rooms ORDER BY hotel_id, room_id`

const selectBookingsSQL = `SELECT hotel_id, arrival, departure, room_type, room_rate FROM bookings`
