package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/cli"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/logging"
	"github.com/alexanderramin/folio/internal/profile"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
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

	// The TUI owns the terminal, so diagnostics go to a file.
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// A missing key is not fatal: the screens render it as their error.
	if err := cfg.Validate(); err != nil {
		if !errors.Is(err, catalog.ErrMissingAPIKey) {
			return err
		}
		logger.Warn("catalog requests will fail", zap.Error(err))
	}

	prof, err := profile.Load(cfg.Profile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	app := &cli.App{
		Catalog: catalog.NewHTTPClient(cfg.Client(), catalog.NewLogObserver(logger)),
		Profile: prof,
		Config:  cfg,
		Logger:  logger,
	}

	// Detect interactive terminal: print mode when piped.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
