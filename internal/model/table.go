package model

import "time"

// Table is a physical table.  Membership in a room is recorded on the
// room side (see Room.TableIDs); the table row itself carries no back
// reference, matching the `tables` schema.
//
// Fields:
//  ID        – primary key identifier.
//  Number    – label printed on the table (e.g. "A1").
//  Capacity  – number of seats at the table.
//  Image     – photo URL (nil if none).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Table struct {
	ID        uint64    // tables.id
	Number    string    // tables.number
	Capacity  uint32    // tables.capacity
	Image     *string   // tables.image (nullable)
	CreatedAt time.Time // tables.created_at
	UpdatedAt time.Time // tables.updated_at
}
