package booking

import (
	"fmt"
	"time"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// Rule identifies which constraint a draft violated.  The values are
// stable machine codes; RuleError carries the human message.
type Rule string

const (
	NotAuthenticated Rule = "not_authenticated"
	MissingGame      Rule = "missing_game"
	MissingRoom      Rule = "missing_room"
	MissingTable     Rule = "missing_table"
	RoomUnavailable  Rule = "room_unavailable"
	CapacityExceeded Rule = "capacity_exceeded"
	InvalidTimeWindow Rule = "invalid_time_window"
)

// RuleError is a constraint violation found at submission time.  It
// is recoverable: the user corrects the input and retries.
type RuleError struct {
	Rule    Rule
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// Session carries the caller's identity into the workflow explicitly,
// instead of reading it from ambient state.  A zero UserID means the
// caller is not authenticated.
type Session struct {
	UserID uint64
}

// Submission is the payload produced from a valid draft, exactly what
// is POSTed to create the reservation.  Timestamps are RFC 3339 UTC.
type Submission struct {
	UserID        uint64  `json:"user"`
	BoardGameID   uint64  `json:"board_game_id"`
	RoomID        uint64  `json:"room_id"`
	TableID       uint64  `json:"table_id"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	DurationHours float64 `json:"duration"`
	TotalPrice    float64 `json:"total_price"`
	AmountPlayer  uint32  `json:"amount_player"`
}

// Validate gates submission.  Rules run in a fixed order and the
// first violation is returned (fail-fast, not aggregate):
// authentication, game, room, table, room availability, capacity,
// time window.  On success it assembles the Submission payload with
// status pending.
func Validate(sess Session, d *Draft) (*Submission, *RuleError) {
	if sess.UserID == 0 {
		return nil, &RuleError{NotAuthenticated, "please sign in before booking"}
	}
	game := d.Game()
	if game == nil {
		return nil, &RuleError{MissingGame, "please select a board game"}
	}
	room := d.Room()
	if room == nil {
		return nil, &RuleError{MissingRoom, "please select a room"}
	}
	if d.Table() == nil {
		return nil, &RuleError{MissingTable, "please select a table"}
	}
	if room.Status == model.RoomInUse {
		return nil, &RuleError{RoomUnavailable, "this room is currently in use"}
	}
	if d.PlayerCount > room.Capacity {
		return nil, &RuleError{CapacityExceeded,
			fmt.Sprintf("player count exceeds room capacity (max %d)", room.Capacity)}
	}
	if d.StartTime.IsZero() || d.EndTime.IsZero() || d.DurationHours <= 0 {
		return nil, &RuleError{InvalidTimeWindow, "please choose a valid start and end time"}
	}
	return &Submission{
		UserID:        sess.UserID,
		BoardGameID:   d.GameID,
		RoomID:        d.RoomID,
		TableID:       d.TableID,
		StartTime:     d.StartTime.UTC().Format(time.RFC3339),
		EndTime:       d.EndTime.UTC().Format(time.RFC3339),
		Status:        model.ReservationPending,
		DurationHours: d.DurationHours,
		TotalPrice:    d.TotalPrice,
		AmountPlayer:  d.PlayerCount,
	}, nil
}
