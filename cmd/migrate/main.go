package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go-resume-backend/config"
	"go-resume-backend/migrations"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
)

// Usage: migrate [up|down|status|version|reset]
func main() {
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.DefaultPoolConfig())
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	db := database.OpenDB(pool)
	defer db.Close()

	if err := migrations.Run(ctx, db, command); err != nil {
		logger.Log.Error("Migration failed", "command", command, "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Migration finished", "command", command)
}
