package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"admissions-dashboard/internal/admissions"
	"admissions-dashboard/internal/connectors/seedfile"
	sqlitestore "admissions-dashboard/internal/connectors/sqlite"
)

func newSeedCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a program seed table for the API server",
		Long: `seed writes the program table into a file the API server can load with
APP_PROGRAM_SOURCE=yaml or APP_PROGRAM_SOURCE=sqlite. Without --from the
built-in five-program table is written.`,
	}
	cmd.PersistentFlags().StringVar(&from, "from", "", "YAML seed file to copy instead of the built-in table")

	rows := func() ([]admissions.ProgramCount, error) {
		if from == "" {
			return admissions.DefaultPrograms(), nil
		}
		loaded, err := seedfile.Load(from)
		if err != nil {
			return nil, err
		}
		if _, err := admissions.NewProgramTable(loaded); err != nil {
			return nil, err
		}
		return loaded, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "yaml <path>",
		Short: "Write the table as a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, err := rows()
			if err != nil {
				return err
			}
			if err := seedfile.Write(args[0], programs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d programs to %s\n", len(programs), args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sqlite <path>",
		Short: "Replace the program table in a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, err := rows()
			if err != nil {
				return err
			}
			store, err := sqlitestore.NewProgramStore(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.ReplacePrograms(cmd.Context(), programs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d programs to %s\n", n, args[0])
			return nil
		},
	})
	return cmd
}
