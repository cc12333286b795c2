package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"admissions-dashboard/internal/dashboard"
)

type rangeFlags struct {
	from string
	to   string
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "first trend date to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&r.to, "to", "", "last trend date to show (YYYY-MM-DD)")
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	var (
		rng    rangeFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch and render the admissions dashboard once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := opts.controller(cmd)
			c.SetRange(rng.from, rng.to)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", dashboard.FetchFailedMessage, err)
			}
			v := c.View()

			if asJSON {
				snap := *v.Snapshot
				snap.Trends = v.FilteredTrends
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			return dashboard.Render(cmd.OutOrStdout(), v)
		},
	}
	rng.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON (trends filtered by --from/--to)")
	return cmd
}

func newTrendsCmd(opts *rootOptions) *cobra.Command {
	var rng rangeFlags
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "List daily application counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := opts.controller(cmd)
			c.SetRange(rng.from, rng.to)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", dashboard.FetchFailedMessage, err)
			}
			return dashboard.RenderTrendTable(cmd.OutOrStdout(), c.View().FilteredTrends)
		},
	}
	rng.register(cmd)
	return cmd
}
