package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootCmd creates the top-level "focustally" command. Run without a
// subcommand it summarizes an export; see bindSummarize.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "focustally [input] [date-filter]",
		Short: "Summarize exported focus sessions by date and task",
		Long: `focustally reads a focus-timer session export, adds up session durations
per calendar date and task, and writes the totals as CSV.

The date filter accepts YYYY-MM-DD, "today" or "yesterday". When it is set,
only that day is summarized and its total is printed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Logger != nil {
				return nil
			}
			logger, err := newLogger(verbose, app.config().Log.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			app.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	bindSummarize(root, app)

	summarize := &cobra.Command{
		Use:   "summarize [input] [date-filter]",
		Short: "Summarize an export (the default command)",
	}
	bindSummarize(summarize, app)

	root.AddCommand(
		summarize,
		newHistoryCmd(app),
	)

	return root
}

// newLogger builds the process logger. Logging is off unless a level is
// configured or --verbose is given.
func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		level = "debug"
	}
	if level == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
