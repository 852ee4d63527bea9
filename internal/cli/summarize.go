package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/focustally/internal/cli/formatter"
	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type summarizeOptions struct {
	input   string
	output  string
	date    dateFilterValue
	hours   bool
	lines   int
	stats   bool
	browse  bool
	askDate bool
}

// bindSummarize attaches the summarize flags and handler to cmd.
func bindSummarize(cmd *cobra.Command, app *App) {
	opts := &summarizeOptions{date: dateFilterValue{now: app.now}}

	cmd.Args = cobra.MaximumNArgs(2)
	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Session export to read (overrides the positional input)")
	f.StringVarP(&opts.output, "output", "o", "", "Report file to write")
	f.VarP(&opts.date, "date", "d", "Only summarize this date: YYYY-MM-DD, today or yesterday")
	f.BoolVar(&opts.hours, "hours", false, "Render totals as hours with two decimals")
	f.Var(newPositiveIntValue(app.config().TailLines, &opts.lines), "lines", "Number of report lines echoed to the terminal")
	f.BoolVar(&opts.stats, "stats", false, "Print row admission counts after the report")
	f.BoolVar(&opts.browse, "browse", false, "Open the written report in a scrollable pager")
	f.BoolVar(&opts.askDate, "ask-date", false, "Prompt for the date filter when none is given")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runSummarize(cmd, app, opts, args)
	}
}

func runSummarize(cmd *cobra.Command, app *App, opts *summarizeOptions, args []string) error {
	cfg := app.config()

	input := cfg.InputFile
	if len(args) > 0 {
		input = args[0]
	}
	if cmd.Flags().Changed("input") {
		input = opts.input
	}
	inputPath, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}

	output := cfg.OutputFile
	if cmd.Flags().Changed("output") {
		output = opts.output
	}
	outputPath, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}

	filter := opts.date.date
	if filter == nil && len(args) > 1 {
		filter, err = domain.ResolveDateFilter(args[1], app.now())
		if err != nil {
			return err
		}
	}
	if filter == nil && opts.askDate {
		if !app.isInputTTY() {
			return fmt.Errorf("--ask-date needs an interactive terminal")
		}
		answer, err := app.promptDate()
		if err != nil {
			return err
		}
		filter, err = domain.ResolveDateFilter(answer, app.now())
		if err != nil {
			return err
		}
	}

	mode := domain.UnitRaw
	if opts.hours || cfg.Hours {
		mode = domain.UnitHours
	}

	res, err := app.reportService().Generate(cmd.Context(), service.ReportRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Columns:    columnsFromConfig(cfg.Columns),
		Filter:     filter,
		Mode:       mode,
	})
	if err != nil {
		return err
	}
	if res.RunID != "" {
		app.logger().Debug("report run recorded", zap.String("run_id", res.RunID))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatSaved(res.OutputPath))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatTail(res.Report.Tail(opts.lines), opts.lines))
	if res.FilterTotal != nil {
		fmt.Fprintln(out, formatter.FormatFilterTotal(*res.Filter, *res.FilterTotal, mode))
	}
	if opts.stats {
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.FormatStats(res.Stats, res.Summary.Len(), res.Summary.Total(), mode))
	}

	if opts.browse {
		if !app.isOutputTTY() {
			app.logger().Debug("pager skipped: stdout is not a terminal")
			return nil
		}
		title := filepath.Base(res.OutputPath)
		return app.browse(title, formatter.ReportMarkdown(title, res.Report))
	}
	return nil
}
