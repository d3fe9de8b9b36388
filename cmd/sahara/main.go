package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Ateeq-afk/sahara/internal/cli"
	"github.com/Ateeq-afk/sahara/internal/config"
	"github.com/Ateeq-afk/sahara/internal/db"
	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/repository"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
	"github.com/Ateeq-afk/sahara/internal/service"
	"github.com/Ateeq-afk/sahara/internal/template"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	// Phase catalog: an explicit file wins over the built-in variant.
	var catalog *template.Catalog
	if cfg.CatalogFile != "" {
		catalog, err = template.LoadValid(cfg.CatalogFile)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		logger.Debug("loaded phase catalog", "path", cfg.CatalogFile, "id", catalog.ID)
	} else {
		catalog, err = template.ForVariant(domain.Variant(cfg.Variant))
		if err != nil {
			return err
		}
	}

	database, err := db.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("opened estimate store", "path", cfg.DB)

	observer := service.NewLogUseCaseObserver(logger)
	estimates := service.NewEstimateService(
		scheduler.New(catalog),
		repository.NewSQLiteEstimateRepo(database),
		db.NewUnitOfWork(database),
		observer,
	)

	app := &cli.App{
		Estimates: estimates,
		Exports:   service.NewExportService(observer),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
