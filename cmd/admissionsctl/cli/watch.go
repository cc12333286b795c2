package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"admissions-dashboard/internal/dashboard"
)

const clearScreen = "\033[H\033[2J"

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var (
		rng      rangeFlags
		interval time.Duration
		count    int
		noClear  bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh the dashboard periodically",
		Long: `watch re-fetches the snapshot every --interval and redraws the dashboard.
A failed refresh shows the error above the last successful snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return errors.New("--interval must be positive")
			}
			c := opts.controller(cmd)
			c.SetRange(rng.from, rng.to)
			out := cmd.OutOrStdout()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for i := 0; count <= 0 || i < count; i++ {
				if i > 0 {
					select {
					case <-cmd.Context().Done():
						return nil
					case <-ticker.C:
					}
				}

				ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
				_ = c.Refresh(ctx)
				cancel()

				if !noClear {
					fmt.Fprint(out, clearScreen)
				}
				if err := dashboard.Render(out, c.View()); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nLast refresh %s (%s)\n", time.Now().Format(time.TimeOnly), c.State().Phase)
			}
			return nil
		},
	}
	rng.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "time between refreshes")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many refreshes (0 = forever)")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the screen between refreshes")
	return cmd
}
