package main

import (
	"fmt"

	"github.com/hnimtadd/knitchart"
	"github.com/hnimtadd/knitchart/chart/store"
	"github.com/hnimtadd/knitchart/internal/config"
	"github.com/hnimtadd/knitchart/logger"
	"github.com/spf13/cobra"
)

// appContext bundles what every command builds from the configuration.
type appContext struct {
	cfg    config.Config
	logger logger.Logger
	store  *store.FileStore
}

// loadContext reads the configuration file, applies the flags set on the
// command line over it and validates the result.
func loadContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("store") {
		cfg.StoreDir = flags.storeDir
	}
	// Only serve has --listen.
	if f := cmd.Flags().Lookup("listen"); f != nil && f.Changed {
		cfg.Listen = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	st, err := store.NewFileStore(cfg.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("configuration loaded", "config", flags.configPath, "store", st.Dir())

	return &appContext{cfg: cfg, logger: log, store: st}, nil
}

// openChart starts app, or the configured app when app is empty.
func (c *appContext) openChart(app string) (*knitchart.Chart, error) {
	if app == "" {
		app = c.cfg.App
	}
	return knitchart.New(knitchart.Options{
		App:    app,
		Store:  c.store,
		Logger: c.logger,
	})
}
