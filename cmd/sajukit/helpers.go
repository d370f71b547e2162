package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haesol/sajukit/internal/common"
	"github.com/haesol/sajukit/internal/config"
	"github.com/haesol/sajukit/internal/engine"
	"github.com/haesol/sajukit/internal/model"
	"github.com/haesol/sajukit/internal/service"
	"github.com/haesol/sajukit/internal/storage"
)

// initStorage initializes the history store with proper path expansion.
func initStorage(ctx context.Context) (service.Store, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/sajukit/history.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open the history database", err)
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the analysis engine from the effective configuration.
func initEngine() (*engine.Engine, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return engine.New(cfg)
}

// pillarFlags registers the four chart flags on a command.
func pillarFlags(cmd *cobra.Command) {
	cmd.Flags().String("year", "", "year pillar (e.g. 甲子, Gap-Ja, or 0:0)")
	cmd.Flags().String("month", "", "month pillar")
	cmd.Flags().String("day", "", "day pillar")
	cmd.Flags().String("hour", "", "hour pillar")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("hour")
}

// pillarsFromFlags parses the four chart flags into a pillar set.
func pillarsFromFlags(cmd *cobra.Command) (model.PillarSet, error) {
	var ps model.PillarSet
	for _, f := range []struct {
		dst  *model.Pillar
		name string
	}{
		{&ps.Year, "year"},
		{&ps.Month, "month"},
		{&ps.Day, "day"},
		{&ps.Hour, "hour"},
	} {
		raw, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return ps, err
		}
		p, err := model.ParsePillar(raw)
		if err != nil {
			return ps, fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = p
	}
	return ps, nil
}
