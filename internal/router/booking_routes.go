package router

import (
	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/handler"
	"github.com/meeplehouse/cafe-reservation/internal/middleware"
)

// RegisterBooking registers the reservation endpoints. All routes require a
// valid JWT with the CUSTOMER role; ownership of individual reservations is
// checked inside the handlers. The limiter middleware throttles booking
// attempts per user.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
		limiter,
	)

	g.POST("/booking-boardgame", h.CreateReservation)
	g.GET("/booking-boardgame/user/:id", h.ListByUser)
	g.GET("/bookings/:id", h.GetReservation)
	g.DELETE("/bookings/:id", h.CancelReservation)
}

// RegisterPayments registers the payment and point endpoints under the same
// JWT and role requirements as the booking routes.
func RegisterPayments(e *echo.Echo, p *handler.PaymentHandler, pts *handler.PointsHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
		limiter,
	)

	g.POST("/payments", p.CreatePayment)
	g.GET("/payment/me", p.MyPayments)
	g.GET("/payments/user/:id", p.ListByUser)

	g.GET("/users/:id/points", pts.GetPoints)
	g.POST("/users/topup", pts.TopUp)
}
