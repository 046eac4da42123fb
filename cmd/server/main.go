package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/config"
	"github.com/zainxyz/thriller/internal/database"
	"github.com/zainxyz/thriller/internal/handler"
	"github.com/zainxyz/thriller/internal/middleware"
	"github.com/zainxyz/thriller/internal/queue"
	"github.com/zainxyz/thriller/internal/repository"
	"github.com/zainxyz/thriller/internal/router"
	"github.com/zainxyz/thriller/internal/service"
	"github.com/zainxyz/thriller/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	genreRepo := repository.NewGenreRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	userRepo := repository.NewUserRepo(db)
	rentalRepo := repository.NewRentalRepo(db)

	rentalSvc := service.NewRentalService(repository.NewSQLTxRunner(db), customerRepo, movieRepo, rentalRepo)
	events := service.NewEventPublisher()
	validate := validation.New()

	// Redis is optional: rate limiting and caching fail open without it.
	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = router.NewHTTPErrorHandler(cfg.Env)
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	cache := middleware.Cache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e,
		handler.NewUserHandler(cfg, userRepo, validate),
		handler.NewAuthHandler(cfg, userRepo, validate),
		cfg.JWTSecret)
	router.RegisterCatalog(e,
		handler.NewGenreHandler(genreRepo, validate),
		handler.NewMovieHandler(movieRepo, genreRepo, validate),
		handler.NewCustomerHandler(customerRepo, validate),
		cfg.JWTSecret, cache)
	router.RegisterRentals(e,
		handler.NewRentalHandler(rentalSvc, validate, events),
		cfg.JWTSecret)

	go func() {
		if err := queue.StartRentalConsumer(); err != nil {
			log.Printf("queue: consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
