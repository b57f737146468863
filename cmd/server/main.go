package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/ticket-service/internal/config"
	"github.com/iliyamo/ticket-service/internal/database"
	"github.com/iliyamo/ticket-service/internal/handler"
	"github.com/iliyamo/ticket-service/internal/middleware"
	"github.com/iliyamo/ticket-service/internal/paymentgateway"
	"github.com/iliyamo/ticket-service/internal/queue"
	"github.com/iliyamo/ticket-service/internal/repository"
	"github.com/iliyamo/ticket-service/internal/router"
	"github.com/iliyamo/ticket-service/internal/seatbooking"
	"github.com/iliyamo/ticket-service/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = database.EnsureSchema(ctx, db)
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Printf("redis unavailable; purchase rate limiting disabled")
	}

	go queue.StartPaymentConsumer(cfg.RabbitMQURL, cfg.PaymentLogDir)

	tickets := service.NewTicketService(
		paymentgateway.NewQueueService(cfg.RabbitMQURL),
		seatbooking.NewMySQLService(db),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, repository.NewAccountRepo(db)), cfg.JWTSecret)
	router.RegisterTickets(e, handler.NewPurchaseHandler(tickets), cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
