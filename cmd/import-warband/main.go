// Package main provides a CLI for importing an exported warband bundle
// directly into the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/weirdos/internal/config"
	"github.com/cory-johannsen/weirdos/internal/game/catalog"
	"github.com/cory-johannsen/weirdos/internal/game/validation"
	"github.com/cory-johannsen/weirdos/internal/importer"
	"github.com/cory-johannsen/weirdos/internal/observability"
	"github.com/cory-johannsen/weirdos/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	bundlePath := flag.String("bundle", "", "path to the warband bundle JSON file")
	name := flag.String("name", "", "override the imported warband's name")
	flag.Parse()

	if *bundlePath == "" {
		log.Fatal("missing required flag: -bundle")
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.Catalog.ContentDir)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	src := importer.FileSource{Path: *bundlePath}
	bundle, err := src.Load()
	if err != nil {
		logger.Fatal("reading bundle", zap.Error(err))
	}

	wb, err := importer.New(cat).ImportBundle(bundle)
	if err != nil {
		logger.Fatal("importing bundle", zap.Error(err))
	}
	if *name != "" {
		wb.Name = *name
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()

	stored, err := postgres.NewWarbandRepository(pool.DB()).Create(ctx, wb)
	if err != nil {
		logger.Fatal("storing warband", zap.Error(err))
	}

	result := validation.ValidateWarband(*stored)
	for _, finding := range result.Errors {
		logger.Warn("rule violation",
			zap.String("field", finding.Field),
			zap.String("code", string(finding.Code)),
			zap.String("message", finding.Message),
		)
	}

	fmt.Fprintf(os.Stdout, "imported warband %q id=%s weirdos=%d total=%d valid=%v [%s]\n",
		stored.Name, stored.ID, len(stored.Weirdos), stored.TotalCost,
		result.Valid, time.Since(start))
}
