package model

import "time"

// Room status enumeration as stored in `rooms.status`.
const (
	RoomAvailable   = "available"
	RoomInUse       = "in_use"
	RoomMaintenance = "maintenance"
)

// Room is a bookable space in the café.  A room has its own hourly
// rate billed on top of the game's rate, a capacity bounding the
// player count, and an ordered set of tables.  Tables are referenced
// weakly by id through the `room_tables` table rather than owned;
// the same flat table collection backs every room.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – unique room name.
//  Capacity     – maximum occupant count.
//  PricePerHour – hourly rate charged while the room is booked.
//  Status       – one of available, in_use, maintenance.
//  Image        – photo URL (nil if none).
//  TableIDs     – ids of the tables this room contains, in display order.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Room struct {
	ID           uint64    // rooms.id
	Name         string    // rooms.name
	Capacity     uint32    // rooms.capacity
	PricePerHour float64   // rooms.price_per_hour
	Status       string    // rooms.status
	Image        *string   // rooms.image (nullable)
	TableIDs     []uint64  // room_tables.table_id, ordered by position
	CreatedAt    time.Time // rooms.created_at
	UpdatedAt    time.Time // rooms.updated_at
}

// HasTable reports whether the table id belongs to this room's table set.
func (r *Room) HasTable(tableID uint64) bool {
	for _, id := range r.TableIDs {
		if id == tableID {
			return true
		}
	}
	return false
}
