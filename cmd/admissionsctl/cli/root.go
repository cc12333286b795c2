package cli

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"admissions-dashboard/internal/dashboard"
)

type rootOptions struct {
	server  string
	timeout time.Duration
	verbose bool
}

// NewRootCmd builds the admissionsctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "admissionsctl",
		Short: "Admissions analytics from the command line",
		Long: `admissionsctl renders the admissions analytics dashboard in the terminal
and manages program seed tables for the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("ADMISSIONS_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "API base URL (env ADMISSIONS_SERVER)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log fetch details to stderr")

	root.AddCommand(newSnapshotCmd(opts))
	root.AddCommand(newTrendsCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newSeedCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func (o *rootOptions) controller(cmd *cobra.Command) *dashboard.Controller {
	level := slog.LevelError
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	client := dashboard.NewClient(strings.TrimSpace(o.server), o.timeout)
	return dashboard.NewController(client, logger)
}
