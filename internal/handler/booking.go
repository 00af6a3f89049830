package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/booking"
	"github.com/meeplehouse/cafe-reservation/internal/model"
	"github.com/meeplehouse/cafe-reservation/internal/repository"
)

// BookingHandler groups the repositories needed to create and inspect
// reservations.  JWT authentication has already run by the time these
// methods are invoked; they still answer 401 when no user id can be
// extracted from the context.
type BookingHandler struct {
	Games        *repository.BoardGameRepo
	Rooms        *repository.RoomRepo
	Tables       *repository.TableRepo
	Reservations *repository.ReservationRepo
}

// NewBookingHandler constructs a new BookingHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewBookingHandler(games *repository.BoardGameRepo, rooms *repository.RoomRepo, tables *repository.TableRepo, reservations *repository.ReservationRepo) *BookingHandler {
	if games == nil || rooms == nil || tables == nil || reservations == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Games: games, Rooms: rooms, Tables: tables, Reservations: reservations}
}

type createReservationReq struct {
	BoardGameID  uint64 `json:"board_game_id"`
	RoomID       uint64 `json:"room_id"`
	TableID      uint64 `json:"table_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	AmountPlayer int    `json:"amount_player"`
}

// ruleStatus maps a constraint violation to its HTTP status.  Input
// errors are 400 and leave the form editable; a missing identity is
// 401 so clients route to login instead of showing an inline message.
func ruleStatus(rule booking.Rule) int {
	if rule == booking.NotAuthenticated {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

// CreateReservation handles POST /v1/booking-boardgame.  The request
// is replayed through the draft composer against a catalog snapshot
// of the referenced entities, gated by the constraint rules, and only
// then inserted with status pending.  Duration and total price are
// derived server-side from the time window and the two hourly rates;
// client-supplied figures are ignored.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	// Snapshot the referenced entities.  A lookup miss leaves the
	// corresponding selection empty and the validator reports it.
	var games []model.BoardGame
	if req.BoardGameID != 0 {
		if g, err := h.Games.GetByID(ctx, req.BoardGameID); err == nil {
			games = append(games, g)
		} else if !errors.Is(err, repository.ErrBoardGameNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load board game"})
		}
	}
	var rooms []model.Room
	var roomTables []model.Table
	if req.RoomID != 0 {
		room, err := h.Rooms.GetByID(ctx, req.RoomID)
		switch {
		case err == nil:
			rooms = append(rooms, room)
			for _, tid := range room.TableIDs {
				if t, err := h.Tables.GetByID(ctx, tid); err == nil {
					roomTables = append(roomTables, t)
				}
			}
		case errors.Is(err, repository.ErrRoomNotFound):
			// leave the room selection unresolved
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room"})
		}
	}

	draft := booking.NewDraft(booking.NewCatalog(games, rooms, roomTables))
	draft.SelectGame(req.BoardGameID)
	draft.SelectRoom(req.RoomID)
	if req.TableID != 0 {
		// Membership failures fall through to the validator so the
		// error ordering stays fixed.
		_ = draft.SelectTable(req.TableID)
	}
	draft.SetPlayerCount(req.AmountPlayer)
	start, end := parseWindow(req.StartTime, req.EndTime)
	draft.SetTimeWindow(start, end)

	sub, rerr := booking.Validate(booking.Session{UserID: userID}, draft)
	if rerr != nil {
		return c.JSON(ruleStatus(rerr.Rule), echo.Map{"error": rerr.Message, "code": string(rerr.Rule)})
	}

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	// Re-check availability under lock; the snapshot may be stale.
	status, err := h.Rooms.GetStatusTx(ctx, tx, sub.RoomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check room"})
	}
	if status == model.RoomInUse {
		return c.JSON(http.StatusConflict, echo.Map{"error": "this room is currently in use", "code": string(booking.RoomUnavailable)})
	}
	res := &model.Reservation{
		UserID:        sub.UserID,
		BoardGameID:   sub.BoardGameID,
		RoomID:        sub.RoomID,
		TableID:       sub.TableID,
		StartTime:     draft.StartTime.UTC(),
		EndTime:       draft.EndTime.UTC(),
		AmountPlayer:  sub.AmountPlayer,
		DurationHours: sub.DurationHours,
		TotalPrice:    sub.TotalPrice,
		Status:        sub.Status,
	}
	if err := h.Reservations.CreateTx(ctx, tx, res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusCreated, echo.Map{
		"id":          res.ID,
		"status":      res.Status,
		"duration":    res.DurationHours,
		"total_price": res.TotalPrice,
	})
}

// parseWindow parses the RFC 3339 endpoint pair, leaving a zero time
// for anything unparseable so the validator reports the window.
func parseWindow(start, end string) (time.Time, time.Time) {
	var s, e time.Time
	if t, err := time.Parse(time.RFC3339, start); err == nil {
		s = t
	}
	if t, err := time.Parse(time.RFC3339, end); err == nil {
		e = t
	}
	return s, e
}

// ListByUser handles GET /v1/booking-boardgame/user/:id.  Users can
// only list their own reservations.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pathUser, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if pathUser != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	details, err := h.Reservations.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": details})
}

// GetReservation handles GET /v1/bookings/:id.  It returns a single
// reservation belonging to the authenticated user; 404 when it does
// not exist, 403 when it belongs to someone else.
func (h *BookingHandler) GetReservation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	res, err := h.Reservations.GetByID(c.Request().Context(), resID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
	}
	if res.UserID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// CancelReservation handles DELETE /v1/bookings/:id.  Only a pending
// reservation can be cancelled by its owner; paid reservations are
// settled and become staff business.
func (h *BookingHandler) CancelReservation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx := c.Request().Context()
	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	res, err := h.Reservations.GetForUpdateTx(ctx, tx, resID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
	}
	if res.UserID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if res.Status != model.ReservationPending {
		return c.JSON(http.StatusConflict, echo.Map{"error": "only pending reservations can be cancelled"})
	}
	if err := h.Reservations.UpdateStatusTx(ctx, tx, resID, model.ReservationCancelled); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel reservation"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.NoContent(http.StatusNoContent)
}
