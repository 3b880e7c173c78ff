// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package main

import (
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/wanderwise/internal/app"
	"github.com/tomtom215/wanderwise/internal/config"
	"github.com/tomtom215/wanderwise/internal/logging"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	compact    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Query WanderWise recommendations from the command line",
		Long:          `planctl loads the configured catalog and runs the same planner as the server, printing JSON results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false, "print single-line JSON")

	root.AddCommand(
		newRecommendCmd(opts),
		newPlanCmd(opts),
		newCatalogCmd(opts),
	)
	return root
}

// loadApp reads configuration and builds the planner. Logs go to stderr so
// stdout carries only JSON.
func (o *globalOptions) loadApp(ctx context.Context, stderr io.Writer) (*app.App, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:  o.logLevel,
		Format: "console",
		Output: stderr,
	})
	return app.New(ctx, cfg)
}

// printJSON writes v to w.
func (o *globalOptions) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
