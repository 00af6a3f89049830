package booking

import (
	"errors"
	"time"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// ErrTableNotInRoom is returned by SelectTable when no room is
// selected yet or the table does not belong to the selected room.
var ErrTableNotInRoom = errors.New("table does not belong to the selected room")

// Draft is an in-progress reservation being assembled from four
// independent selections (game, room, table, time window) plus a
// player count.  Every mutating operation re-derives DurationHours
// and TotalPrice so the draft is always a consistent projection of
// its inputs; the same inputs always produce the same derived values.
//
// A Draft is not safe for concurrent use.  It lives for a single
// editing session and is never persisted; submission goes through
// Validate, which turns a consistent draft into a payload.
type Draft struct {
	catalog *Catalog

	GameID  uint64
	RoomID  uint64
	TableID uint64

	StartTime time.Time
	EndTime   time.Time

	PlayerCount uint32

	// Derived by recompute after every mutation.
	DurationHours float64
	TotalPrice    float64
}

// NewDraft returns an empty draft resolving selections against the
// given catalog.  The player count starts at 1, the floor of the
// clamp range.
func NewDraft(catalog *Catalog) *Draft {
	return &Draft{catalog: catalog, PlayerCount: 1}
}

// Game returns the selected game, or nil when none is selected.
func (d *Draft) Game() *model.BoardGame { return d.catalog.Game(d.GameID) }

// Room returns the selected room, or nil when none is selected.
func (d *Draft) Room() *model.Room { return d.catalog.Room(d.RoomID) }

// Table returns the selected table, or nil when none is selected.
func (d *Draft) Table() *model.Table { return d.catalog.Table(d.TableID) }

// SelectGame sets the selected game.  No other selection is cleared;
// only the price changes, since the game contributes its hourly rate.
// Passing zero clears the selection.
func (d *Draft) SelectGame(gameID uint64) {
	d.GameID = gameID
	d.recompute()
}

// SelectRoom sets the selected room.  Tables are scoped to a room, so
// a previously selected table is cleared unless the new room's table
// set still contains it.  The player count is re-clamped against the
// new capacity: a count above it is silently reduced, a deliberate
// auto-correction rather than an error.  Passing zero clears the room
// and the table.
func (d *Draft) SelectRoom(roomID uint64) {
	d.RoomID = roomID
	room := d.catalog.Room(roomID)
	if room == nil || !room.HasTable(d.TableID) {
		d.TableID = 0
	}
	if room != nil && d.PlayerCount > room.Capacity {
		d.PlayerCount = room.Capacity
	}
	d.recompute()
}

// SelectTable sets the selected table.  The selection is only
// meaningful when a room is selected and the table is a member of
// that room's table set; otherwise ErrTableNotInRoom is returned and
// the draft is unchanged.
func (d *Draft) SelectTable(tableID uint64) error {
	room := d.catalog.Room(d.RoomID)
	if room == nil || !room.HasTable(tableID) {
		return ErrTableNotInRoom
	}
	d.TableID = tableID
	return nil
}

// SetPlayerCount clamps n into [1, room.capacity] when a room is
// selected, and to a floor of 1 otherwise.  Zero and negative input
// clamp to 1.
func (d *Draft) SetPlayerCount(n int) {
	if n < 1 {
		n = 1
	}
	count := uint32(n)
	if room := d.catalog.Room(d.RoomID); room != nil && count > room.Capacity {
		count = room.Capacity
	}
	d.PlayerCount = count
}

// SetTimeWindow stores the raw start and end timestamps.  An inverted
// window is not rejected here — the user may type start and end in
// either order while editing — it simply quotes zero until the
// validator blocks submission.
func (d *Draft) SetTimeWindow(start, end time.Time) {
	d.StartTime = start
	d.EndTime = end
	d.recompute()
}

// recompute re-derives duration and total from the current inputs.
func (d *Draft) recompute() {
	var gameRate, roomRate float64
	game := d.catalog.Game(d.GameID)
	if game == nil {
		// No game selected: price is not yet computable.
		d.DurationHours = 0
		d.TotalPrice = 0
		return
	}
	gameRate = game.PricePerHour
	if room := d.catalog.Room(d.RoomID); room != nil {
		roomRate = room.PricePerHour
	}
	q := Price(d.StartTime, d.EndTime, gameRate, roomRate)
	d.DurationHours = q.Hours
	d.TotalPrice = q.Total
}
