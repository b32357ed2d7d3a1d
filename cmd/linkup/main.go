package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/linkup-dev/linkup/db"
	"github.com/linkup-dev/linkup/internal/auth"
	"github.com/linkup-dev/linkup/internal/config"
	"github.com/linkup-dev/linkup/internal/handlers"
	"github.com/linkup-dev/linkup/internal/logger"
	"github.com/linkup-dev/linkup/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()

	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		logger.Fatal("Failed to initialize JWT secret", err)
	}

	if err := db.ConnectDatabase(cfg.DSN()); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("Failed to migrate database", err)
	}

	handlers.Setup(db.DB, cfg)

	r := router.NewRouter()

	logger.Info("starting server", "port", cfg.AppPort, "env", cfg.AppEnv)

	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}
