package router

import (
	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/handler"
)

// RegisterCatalog registers the public browse endpoints for board games,
// rooms and tables. No authentication is applied so guests can explore the
// catalog before signing up. The cache middleware (built from CACHE_* env
// vars) wraps every catalog route since the catalog changes rarely and is
// read on every booking page load.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)

	g.GET("/boardgame", h.ListBoardGames)
	g.GET("/boardgame/:id", h.GetBoardGame)
	g.GET("/boardgame/findname", h.FindBoardGames)

	g.GET("/room", h.ListRooms)
	g.GET("/room/:id", h.GetRoom)
	g.GET("/room/findname", h.FindRooms)

	g.GET("/table", h.ListTables)
	g.GET("/table/:id", h.GetTable)
}
