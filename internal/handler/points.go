package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/repository"
)

// PointsHandler exposes the point balance and the top-up flow.
type PointsHandler struct {
	Users *repository.UserRepo
}

// NewPointsHandler constructs a new PointsHandler.
func NewPointsHandler(users *repository.UserRepo) *PointsHandler {
	if users == nil {
		panic("nil repository passed to NewPointsHandler")
	}
	return &PointsHandler{Users: users}
}

// GetPoints handles GET /v1/users/:id/points.  Users can only read
// their own balance.
func (h *PointsHandler) GetPoints(c echo.Context) error {
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
	points, err := h.Users.GetPoints(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load points"})
	}
	return c.JSON(http.StatusOK, echo.Map{"points": points})
}

type topupReq struct {
	Amount float64 `json:"amount"`
}

// TopUp handles POST /v1/users/topup.  It credits the caller's own
// balance; the amount must be positive.
func (h *PointsHandler) TopUp(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req topupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	points, err := h.Users.AddPoints(c.Request().Context(), userID, req.Amount)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to top up"})
	}
	return c.JSON(http.StatusOK, echo.Map{"points": points})
}
