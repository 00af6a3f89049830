package model

import "time"

// Reservation status enumeration as stored in `reservations.status`.
// A reservation starts out pending and is flipped to confirmed by a
// successful payment.  Cancellation and fulfillment are driven by
// staff tooling and background jobs, never by the booking flow.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationDone      = "done"
)

// Reservation records a user's booking of a game, a room and a table
// for a time window.  Duration and total price are the derived values
// computed at submission time; the stored copies are what the payment
// flow charges against.  This struct corresponds to a row in the
// `reservations` table.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – user who made the reservation.
//  BoardGameID   – game being reserved.
//  RoomID        – room being reserved.
//  TableID       – table inside the room.
//  StartTime     – when play begins (UTC).
//  EndTime       – when play ends (UTC).
//  AmountPlayer  – number of players.
//  DurationHours – billed hours, one decimal.
//  TotalPrice    – duration × (game rate + room rate).
//  Status        – pending, confirmed, cancelled or done.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Reservation struct {
	ID            uint64    // reservations.id
	UserID        uint64    // reservations.user_id
	BoardGameID   uint64    // reservations.board_game_id
	RoomID        uint64    // reservations.room_id
	TableID       uint64    // reservations.table_id
	StartTime     time.Time // reservations.start_time
	EndTime       time.Time // reservations.end_time
	AmountPlayer  uint32    // reservations.amount_player
	DurationHours float64   // reservations.duration_hours
	TotalPrice    float64   // reservations.total_price
	Status        string    // reservations.status
	CreatedAt     time.Time // reservations.created_at
	UpdatedAt     time.Time // reservations.updated_at
}
