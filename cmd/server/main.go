package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pokevault/internal/auth"
	"pokevault/internal/cache"
	"pokevault/internal/catalog"
	"pokevault/internal/config"
	"pokevault/internal/db"
	"pokevault/internal/handler"
	"pokevault/internal/logger"
	"pokevault/internal/model"
	"pokevault/internal/repository"
	"pokevault/internal/router"
	"pokevault/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Log.Fatalw("database init", "err", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Favorite{},
	); err != nil {
		logger.Log.Fatalw("auto-migrate", "err", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	catalogClient := catalog.New(cfg.CatalogBaseURL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	favoriteService := service.NewFavoriteService(favoriteRepo, catalogClient)
	searchService := service.NewSearchService(catalogClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	pokemonHandler := handler.NewPokemonHandler(catalogClient, searchService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		pokemonHandler,
		favoriteHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Log.Infow("starting server", "addr", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalw("server start", "err", err)
	}
}
