package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/repository"
)

// CatalogHandler serves the reference data the booking flow selects
// from: the game library, the rooms and the flat table collection.
// All endpoints are public reads; mutation happens through staff
// tooling outside this service.
type CatalogHandler struct {
	Games  *repository.BoardGameRepo
	Rooms  *repository.RoomRepo
	Tables *repository.TableRepo
}

// NewCatalogHandler constructs a new CatalogHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewCatalogHandler(games *repository.BoardGameRepo, rooms *repository.RoomRepo, tables *repository.TableRepo) *CatalogHandler {
	if games == nil || rooms == nil || tables == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Games: games, Rooms: rooms, Tables: tables}
}

// ListBoardGames handles GET /v1/boardgame.
func (h *CatalogHandler) ListBoardGames(c echo.Context) error {
	games, err := h.Games.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load board games"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": games})
}

// GetBoardGame handles GET /v1/boardgame/:id.
func (h *CatalogHandler) GetBoardGame(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid board game id"})
	}
	g, err := h.Games.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBoardGameNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "board game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load board game"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": g})
}

// FindBoardGames handles GET /v1/boardgame/findname?name=.
func (h *CatalogHandler) FindBoardGames(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	games, err := h.Games.FindByName(c.Request().Context(), name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search board games"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": games})
}

// ListRooms handles GET /v1/room.  Each room carries its table-id set
// so clients can filter the flat table list per room.
func (h *CatalogHandler) ListRooms(c echo.Context) error {
	roomList, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": roomList})
}

// GetRoom handles GET /v1/room/:id.  The response enriches the room
// with its resolved tables; a table id whose row has gone missing is
// logged and omitted rather than failing the whole view.
func (h *CatalogHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	ctx := c.Request().Context()
	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room"})
	}
	tables := make([]any, 0, len(room.TableIDs))
	for _, tid := range room.TableIDs {
		t, err := h.Tables.GetByID(ctx, tid)
		if err != nil {
			log.Printf("catalog: room %d references table %d: %v", room.ID, tid, err)
			continue
		}
		tables = append(tables, t)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": room, "tables": tables})
}

// FindRooms handles GET /v1/room/findname?name=.
func (h *CatalogHandler) FindRooms(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	roomList, err := h.Rooms.FindByName(c.Request().Context(), name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": roomList})
}

// ListTables handles GET /v1/table.
func (h *CatalogHandler) ListTables(c echo.Context) error {
	tables, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tables"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": tables})
}

// GetTable handles GET /v1/table/:id.
func (h *CatalogHandler) GetTable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	t, err := h.Tables.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load table"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": t})
}
