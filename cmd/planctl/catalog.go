// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/wanderwise/internal/catalog"
)

type catalogStatsOutput struct {
	Path   string         `json:"path"`
	Stats  catalog.Stats  `json:"stats"`
	Report catalog.Report `json:"load"`
}

func newCatalogCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the location catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print catalog counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.loadApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			return opts.printJSON(cmd.OutOrStdout(), catalogStatsOutput{
				Path:   a.Config.Catalog.Path,
				Stats:  a.Catalog.Stats(),
				Report: a.Report,
			})
		},
	})
	return cmd
}
