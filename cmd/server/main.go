package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/hotelero/reservas/internal/config"
	"github.com/hotelero/reservas/internal/database"
	"github.com/hotelero/reservas/internal/handler"
	"github.com/hotelero/reservas/internal/middleware"
	"github.com/hotelero/reservas/internal/queue"
	"github.com/hotelero/reservas/internal/repository"
	"github.com/hotelero/reservas/internal/router"
	queue_publisher "github.com/hotelero/reservas/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client the cache and rate limiter become no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	repo := repository.NewReservationRepo(db)
	h := handler.NewReservationHandler(repo)
	h.PublishCreated = func(ctx context.Context, evt queue.ReservaCreadaEvent) {
		// Fire and forget; a broker outage must not fail the booking.
		go func() {
			_ = queue_publisher.PublishReservaCreada(context.Background(), evt)
		}()
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterRoutes(e, h)

	// Consume booking events into logs/reservas.log for the life of the process.
	go queue.StartReservaConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
