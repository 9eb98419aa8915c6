// Package main provides the warband builder API server binary.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/weirdos/internal/config"
	"github.com/cory-johannsen/weirdos/internal/game/catalog"
	"github.com/cory-johannsen/weirdos/internal/importer"
	"github.com/cory-johannsen/weirdos/internal/observability"
	"github.com/cory-johannsen/weirdos/internal/server"
	"github.com/cory-johannsen/weirdos/internal/storage/postgres"
	"github.com/cory-johannsen/weirdos/internal/web"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "override catalog content directory")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Catalog.ContentDir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catStart := time.Now()
	cat, err := catalog.Load(cfg.Catalog.ContentDir)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("weapons", len(cat.Weapons())),
		zap.Int("equipment", len(cat.AllEquipment())),
		zap.Int("psychic_powers", len(cat.PsychicPowers())),
		zap.Duration("elapsed", time.Since(catStart)),
	)

	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	repo := postgres.NewWarbandRepository(pool.DB())
	handler := web.NewHandler(repo, cat, importer.New(cat), pool, cfg.Auth, logger)
	apiServer := web.NewServer(cfg.HTTP, handler.Routes(), logger)

	lc := server.NewLifecycle(logger)
	lc.Add("api", apiServer)

	if err := lc.Run(ctx); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}
