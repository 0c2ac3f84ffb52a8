package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/moviehub/movie-api/internal/config"
	"github.com/moviehub/movie-api/internal/database"
	"github.com/moviehub/movie-api/internal/handler"
	"github.com/moviehub/movie-api/internal/repository"
	"github.com/moviehub/movie-api/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB) // Connect to MongoDB
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(ctx)
	}()

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	reviews := repository.NewReviewRepo(db)

	// Index bootstrap: unique usernames, reviews-by-movie join.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("user indexes: %v", err)
	}
	if err := reviews.EnsureIndexes(ctx); err != nil {
		log.Fatalf("review indexes: %v", err)
	}
	cancel()

	e := echo.New()
	e.Use(echomw.Logger(), echomw.Recover())

	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg, users),
		handler.NewMovieHandler(movies),
		handler.NewReviewHandler(reviews),
		cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
