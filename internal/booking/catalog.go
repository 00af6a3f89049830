// Package booking implements the reservation workflow: composing a
// draft from independent game/room/table selections, deriving duration
// and price from the time window, gating submission on the constraint
// rules, and reconciling payment against a point balance.  The package
// is pure — no database, no HTTP — so handlers and tests drive it with
// explicit catalog, session and balance values.
package booking

import "github.com/meeplehouse/cafe-reservation/internal/model"

// Catalog is the read model the composer resolves selections against.
// It is an immutable snapshot of the reference data: games, rooms and
// the flat table collection.  Room→table membership is a weak
// reference by id, so TablesInRoom filters the flat collection rather
// than following an owned relation.
type Catalog struct {
	games  map[uint64]*model.BoardGame
	rooms  map[uint64]*model.Room
	tables map[uint64]*model.Table
}

// NewCatalog indexes the given reference data by id.  The slices are
// not retained; entries are copied into internal maps.
func NewCatalog(games []model.BoardGame, rooms []model.Room, tables []model.Table) *Catalog {
	c := &Catalog{
		games:  make(map[uint64]*model.BoardGame, len(games)),
		rooms:  make(map[uint64]*model.Room, len(rooms)),
		tables: make(map[uint64]*model.Table, len(tables)),
	}
	for i := range games {
		g := games[i]
		c.games[g.ID] = &g
	}
	for i := range rooms {
		r := rooms[i]
		c.rooms[r.ID] = &r
	}
	for i := range tables {
		t := tables[i]
		c.tables[t.ID] = &t
	}
	return c
}

// Game returns the game with the given id, or nil when absent or id is zero.
func (c *Catalog) Game(id uint64) *model.BoardGame { return c.games[id] }

// Room returns the room with the given id, or nil when absent or id is zero.
func (c *Catalog) Room(id uint64) *model.Room { return c.rooms[id] }

// Table returns the table with the given id, or nil when absent or id is zero.
func (c *Catalog) Table(id uint64) *model.Table { return c.tables[id] }

// TablesInRoom returns the tables belonging to the room, in the
// room's declared order.  Ids in the room's set that have no backing
// table row are skipped.  An unknown room id yields an empty slice.
func (c *Catalog) TablesInRoom(roomID uint64) []model.Table {
	room := c.rooms[roomID]
	if room == nil {
		return nil
	}
	out := make([]model.Table, 0, len(room.TableIDs))
	for _, id := range room.TableIDs {
		if t := c.tables[id]; t != nil {
			out = append(out, *t)
		}
	}
	return out
}
