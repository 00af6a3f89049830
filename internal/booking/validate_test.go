package booking

import (
	"testing"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

func validDraft(t *testing.T) *Draft {
	t.Helper()
	d := NewDraft(testCatalog())
	d.SelectGame(1)
	d.SelectRoom(10)
	if err := d.SelectTable(100); err != nil {
		t.Fatalf("SelectTable: %v", err)
	}
	d.SetPlayerCount(4)
	d.SetTimeWindow(at(18, 0), at(20, 30))
	return d
}

func TestValidateOrderIsFixed(t *testing.T) {
	sess := Session{UserID: 7}

	// Missing both game and room reports the game first.
	d := NewDraft(testCatalog())
	d.SetTimeWindow(at(18, 0), at(20, 30))
	if _, rerr := Validate(sess, d); rerr == nil || rerr.Rule != MissingGame {
		t.Fatalf("rule = %v, want MissingGame", rerr)
	}

	// Authentication outranks everything.
	if _, rerr := Validate(Session{}, validDraft(t)); rerr == nil || rerr.Rule != NotAuthenticated {
		t.Fatalf("rule = %v, want NotAuthenticated", rerr)
	}

	d = NewDraft(testCatalog())
	d.SelectGame(1)
	if _, rerr := Validate(sess, d); rerr == nil || rerr.Rule != MissingRoom {
		t.Fatalf("rule = %v, want MissingRoom", rerr)
	}
	d.SelectRoom(10)
	if _, rerr := Validate(sess, d); rerr == nil || rerr.Rule != MissingTable {
		t.Fatalf("rule = %v, want MissingTable", rerr)
	}
}

func TestValidateRejectsRoomInUse(t *testing.T) {
	d := NewDraft(testCatalog())
	d.SelectGame(1)
	d.SelectRoom(12) // in_use
	if err := d.SelectTable(103); err != nil {
		t.Fatalf("SelectTable: %v", err)
	}
	d.SetTimeWindow(at(18, 0), at(20, 0))
	if _, rerr := Validate(Session{UserID: 7}, d); rerr == nil || rerr.Rule != RoomUnavailable {
		t.Fatalf("rule = %v, want RoomUnavailable", rerr)
	}
}

func TestValidateCapacityMessageNamesMax(t *testing.T) {
	d := validDraft(t)
	// Force an oversized count past the clamp to exercise the gate.
	d.PlayerCount = 9
	_, rerr := Validate(Session{UserID: 7}, d)
	if rerr == nil || rerr.Rule != CapacityExceeded {
		t.Fatalf("rule = %v, want CapacityExceeded", rerr)
	}
	if want := "player count exceeds room capacity (max 4)"; rerr.Message != want {
		t.Fatalf("message = %q, want %q", rerr.Message, want)
	}
}

func TestValidateBlocksInvertedWindow(t *testing.T) {
	d := validDraft(t)
	d.SetTimeWindow(at(20, 0), at(18, 0))
	if _, rerr := Validate(Session{UserID: 7}, d); rerr == nil || rerr.Rule != InvalidTimeWindow {
		t.Fatalf("rule = %v, want InvalidTimeWindow", rerr)
	}
}

func TestValidateAssemblesSubmission(t *testing.T) {
	sub, rerr := Validate(Session{UserID: 7}, validDraft(t))
	if rerr != nil {
		t.Fatalf("Validate: %v", rerr)
	}
	if sub.UserID != 7 || sub.BoardGameID != 1 || sub.RoomID != 10 || sub.TableID != 100 {
		t.Fatalf("submission ids wrong: %+v", sub)
	}
	if sub.Status != model.ReservationPending {
		t.Fatalf("status = %q, want pending", sub.Status)
	}
	if sub.StartTime != "2025-03-08T18:00:00Z" || sub.EndTime != "2025-03-08T20:30:00Z" {
		t.Fatalf("timestamps = %q / %q", sub.StartTime, sub.EndTime)
	}
	if !almostEqual(sub.DurationHours, 2.5) || !almostEqual(sub.TotalPrice, 625) || sub.AmountPlayer != 4 {
		t.Fatalf("derived fields wrong: %+v", sub)
	}
}
