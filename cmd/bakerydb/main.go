// Command bakerydb manages the bakery database schema and sample data.
//
//	bakerydb up       apply pending migrations
//	bakerydb down     roll back every migration
//	bakerydb version  print the current schema version
//	bakerydb seed     replace all rows with the built-in fixtures
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/vbonduro/bakeryapi/internal/config"
	"github.com/vbonduro/bakeryapi/internal/db"
	"github.com/vbonduro/bakeryapi/internal/logging"
	"github.com/vbonduro/bakeryapi/internal/seed"
)

var errUsage = errors.New("usage: bakerydb [-db path] up|down|version|seed")

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	fs := flag.NewFlagSet("bakerydb", flag.ExitOnError)
	dbPath := fs.String("db", cfg.DBPath, "path to the SQLite database file")
	_ = fs.Parse(os.Args[1:])

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	if err := run(context.Background(), *dbPath, fs.Args(), logger); err != nil {
		logger.Error("bakerydb failed", "error", err)
		cleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, dbPath string, args []string, logger *slog.Logger) error {
	if len(args) != 1 {
		return errUsage
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	switch args[0] {
	case "up":
		return db.MigrateUp(database, logger)
	case "down":
		return db.MigrateDown(database, logger)
	case "version":
		return printVersion(database)
	case "seed":
		_, err := seed.Run(ctx, database, seed.Fixtures, logger)
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func printVersion(database *sql.DB) error {
	version, dirty, err := db.Version(database)
	if err != nil {
		return err
	}
	if dirty {
		fmt.Printf("%d (dirty)\n", version)
		return nil
	}
	fmt.Println(version)
	return nil
}
