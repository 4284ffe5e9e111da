package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vbonduro/bakeryapi/internal/config"
	"github.com/vbonduro/bakeryapi/internal/db"
	"github.com/vbonduro/bakeryapi/internal/logging"
	"github.com/vbonduro/bakeryapi/internal/service"
	"github.com/vbonduro/bakeryapi/internal/store"
	"github.com/vbonduro/bakeryapi/internal/web"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	database.SetMaxOpenConns(cfg.DBMaxOpenConns)

	svc := service.NewBakeryService(
		store.NewBakeryStore(database),
		store.NewBakedGoodStore(database),
		logger,
	)
	server := web.NewServer(svc, database, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, cfg.ListenAddr, cfg.ShutdownTimeout); err != nil {
		logger.Error("server error", "error", err)
	}
}
