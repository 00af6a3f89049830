package booking

import (
	"testing"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

func testCatalog() *Catalog {
	games := []model.BoardGame{
		{ID: 1, Name: "Catan", PricePerHour: 150, MinPlayer: 3, MaxPlayer: 4},
		{ID: 2, Name: "Azul", PricePerHour: 90, MinPlayer: 2, MaxPlayer: 4},
	}
	rooms := []model.Room{
		{ID: 10, Name: "Galleon", Capacity: 4, PricePerHour: 100, Status: model.RoomAvailable, TableIDs: []uint64{100, 101}},
		{ID: 11, Name: "Sloop", Capacity: 2, PricePerHour: 60, Status: model.RoomAvailable, TableIDs: []uint64{102}},
		{ID: 12, Name: "Brig", Capacity: 6, PricePerHour: 120, Status: model.RoomInUse, TableIDs: []uint64{103}},
	}
	tables := []model.Table{
		{ID: 100, Number: "A1", Capacity: 4},
		{ID: 101, Number: "A2", Capacity: 4},
		{ID: 102, Number: "B1", Capacity: 2},
		{ID: 103, Number: "C1", Capacity: 6},
	}
	return NewCatalog(games, rooms, tables)
}

func TestSelectRoomClearsForeignTable(t *testing.T) {
	d := NewDraft(testCatalog())
	d.SelectRoom(10)
	if err := d.SelectTable(100); err != nil {
		t.Fatalf("SelectTable: %v", err)
	}
	d.SelectRoom(11)
	if d.TableID != 0 {
		t.Fatalf("table %d survived a room change that invalidated it", d.TableID)
	}
}

func TestSelectRoomKeepsSharedTable(t *testing.T) {
	games := []model.BoardGame{{ID: 1, Name: "Catan", PricePerHour: 150}}
	rooms := []model.Room{
		{ID: 10, Capacity: 4, Status: model.RoomAvailable, TableIDs: []uint64{100}},
		{ID: 11, Capacity: 4, Status: model.RoomAvailable, TableIDs: []uint64{100, 101}},
	}
	tables := []model.Table{{ID: 100, Number: "A1"}, {ID: 101, Number: "A2"}}
	d := NewDraft(NewCatalog(games, rooms, tables))
	d.SelectRoom(10)
	if err := d.SelectTable(100); err != nil {
		t.Fatalf("SelectTable: %v", err)
	}
	d.SelectRoom(11)
	if d.TableID != 100 {
		t.Fatalf("table cleared although the new room contains it; got %d", d.TableID)
	}
}

func TestSelectTableRequiresMembership(t *testing.T) {
	d := NewDraft(testCatalog())
	if err := d.SelectTable(100); err != ErrTableNotInRoom {
		t.Fatalf("SelectTable without a room: err = %v, want ErrTableNotInRoom", err)
	}
	d.SelectRoom(11)
	if err := d.SelectTable(100); err != ErrTableNotInRoom {
		t.Fatalf("SelectTable outside room set: err = %v, want ErrTableNotInRoom", err)
	}
	if err := d.SelectTable(102); err != nil {
		t.Fatalf("SelectTable member: %v", err)
	}
}

func TestSetPlayerCountClamps(t *testing.T) {
	d := NewDraft(testCatalog())
	d.SelectRoom(10) // capacity 4
	for n, want := range map[int]uint32{10: 4, 4: 4, 1: 1, 0: 1, -3: 1} {
		d.SetPlayerCount(n)
		if d.PlayerCount != want {
			t.Fatalf("SetPlayerCount(%d) = %d, want %d", n, d.PlayerCount, want)
		}
	}
	// Without a room only the floor applies.
	d = NewDraft(testCatalog())
	d.SetPlayerCount(25)
	if d.PlayerCount != 25 {
		t.Fatalf("SetPlayerCount without room = %d, want 25", d.PlayerCount)
	}
}

func TestRoomChangeReclampsPlayerCount(t *testing.T) {
	d := NewDraft(testCatalog())
	d.SelectRoom(10)
	d.SetPlayerCount(4)
	d.SelectRoom(11) // capacity 2
	if d.PlayerCount != 2 {
		t.Fatalf("player count after shrinking room = %d, want 2", d.PlayerCount)
	}
}

func TestDraftDerivesPriceFromSelections(t *testing.T) {
	d := NewDraft(testCatalog())
	d.SetTimeWindow(at(18, 0), at(20, 30))
	if d.TotalPrice != 0 {
		t.Fatalf("price computed without a game: %v", d.TotalPrice)
	}
	d.SelectGame(1)
	d.SelectRoom(10)
	if !almostEqual(d.DurationHours, 2.5) || !almostEqual(d.TotalPrice, 625) {
		t.Fatalf("derived %v hours / %v total, want 2.5 / 625", d.DurationHours, d.TotalPrice)
	}
	// Switching the game swaps its rate into the total.
	d.SelectGame(2)
	if !almostEqual(d.TotalPrice, 2.5*(90+100)) {
		t.Fatalf("total after game change = %v, want %v", d.TotalPrice, 2.5*(90+100))
	}
	// Recomputation is idempotent: repeating the same inputs does not accumulate.
	d.SetTimeWindow(at(18, 0), at(20, 30))
	d.SetTimeWindow(at(18, 0), at(20, 30))
	if !almostEqual(d.TotalPrice, 2.5*(90+100)) {
		t.Fatalf("total drifted on recompute: %v", d.TotalPrice)
	}
}

func TestDraftInvertedWindowQuotesZero(t *testing.T) {
	d := NewDraft(testCatalog())
	d.SelectGame(1)
	d.SelectRoom(10)
	d.SetTimeWindow(at(20, 0), at(18, 0))
	if d.DurationHours != 0 || d.TotalPrice != 0 {
		t.Fatalf("inverted window derived %v hours / %v total", d.DurationHours, d.TotalPrice)
	}
}
