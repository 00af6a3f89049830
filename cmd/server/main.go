package main // entry point for the reservation API server

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/meeplehouse/cafe-reservation/internal/config"
	"github.com/meeplehouse/cafe-reservation/internal/database"
	"github.com/meeplehouse/cafe-reservation/internal/handler"
	"github.com/meeplehouse/cafe-reservation/internal/middleware"
	"github.com/meeplehouse/cafe-reservation/internal/queue"
	"github.com/meeplehouse/cafe-reservation/internal/repository"
	"github.com/meeplehouse/cafe-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the catalog response cache and the rate limiter. A nil
	// client disables both rather than blocking startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	games := repository.NewBoardGameRepo(db)
	rooms := repository.NewRoomRepo(db)
	tables := repository.NewTableRepo(db)
	reservations := repository.NewReservationRepo(db)
	payments := repository.NewPaymentRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	catalogH := handler.NewCatalogHandler(games, rooms, tables)
	bookingH := handler.NewBookingHandler(games, rooms, tables, reservations)
	paymentH := handler.NewPaymentHandler(reservations, payments, users)
	pointsH := handler.NewPointsHandler(users)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterCatalog(e, catalogH, cacheMW)
	router.RegisterBooking(e, bookingH, cfg.JWTSecret, limitMW)
	router.RegisterPayments(e, paymentH, pointsH, cfg.JWTSecret, limitMW)

	// The consumer appends confirmed payments to logs/payment.log and
	// reconnects on broker failure, so it runs for the life of the process.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
