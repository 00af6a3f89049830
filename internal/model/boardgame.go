package model

import "time"

// BoardGame is a title in the café's library.  Games are reference
// data from the booking flow's point of view: they are created and
// edited only through administrative tooling and never mutated while
// composing a reservation.  This struct corresponds to a row in the
// `board_games` table.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name of the game.
//  PricePerHour – hourly rate charged while the game is in play.
//  MinPlayer    – minimum supported player count.
//  MaxPlayer    – maximum supported player count.
//  DurationHint – typical play time in minutes (nil if unknown).
//  Category     – genre label (nil if uncategorized).
//  Publisher    – publishing house (nil if unknown).
//  Image        – thumbnail URL (nil if none uploaded).
//  CreatedAt    – timestamp when the game was added.
//  UpdatedAt    – timestamp of last update.
type BoardGame struct {
	ID           uint64    // board_games.id
	Name         string    // board_games.name
	PricePerHour float64   // board_games.price_per_hour
	MinPlayer    uint32    // board_games.min_player
	MaxPlayer    uint32    // board_games.max_player
	DurationHint *uint32   // board_games.duration_min (nullable)
	Category     *string   // board_games.category (nullable)
	Publisher    *string   // board_games.publisher (nullable)
	Image        *string   // board_games.image (nullable)
	CreatedAt    time.Time // board_games.created_at
	UpdatedAt    time.Time // board_games.updated_at
}
