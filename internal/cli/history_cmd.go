package cli

import (
	"fmt"

	"github.com/alexanderramin/focustally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded report runs",
		Long: `Lists and removes the run records kept when history.enabled is set in the
config file. Only run metadata is stored, never the summarized totals.`,
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent report runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.historyService()
			if err != nil {
				return err
			}

			runs, err := history.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(runs, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(newPositiveIntValue(20, &limit), "limit", "Maximum number of runs to show")

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one report run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.historyService()
			if err != nil {
				return err
			}

			run, err := history.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRunDetail(run, app.now()))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a report run from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.historyService()
			if err != nil {
				return err
			}

			if err := history.Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed run %s\n", args[0])
			return nil
		},
	}
}
