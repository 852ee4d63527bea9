package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/focustally/internal/config"
	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/repository"
	"github.com/alexanderramin/focustally/internal/service"
	"github.com/alexanderramin/focustally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, time.January, 7, 12, 0, 0, 0, time.Local)

// testApp wires an App with history disabled and a fixed clock.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Config: config.DefaultConfig(),
		Logger: zap.NewNop(),
		Now:    func() time.Time { return fixedNow },
	}
}

// testAppWithHistory wires an App whose runs are recorded in an in-memory DB.
func testAppWithHistory(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	app := testApp(t)
	app.UoW = testutil.NewTestUoW(database)
	app.History = service.NewHistoryService(repository.NewSQLiteRunRepo(database))
	return app
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func weekInput(t *testing.T) string {
	t.Helper()
	return testutil.WriteCSV(t,
		testutil.ExportRow("6 Jan 2024 at 9:00:00 AM", "45", "Read"),
		testutil.ExportRow("7 Jan 2024 at 9:00:00 AM", "100", "Read"),
		testutil.ExportRow("7 Jan 2024 1:00:00 PM", "20", "Read"),
		testutil.ExportRow("7 Jan 2024 at 5:00:00 PM", "30", "Write"),
		testutil.ExportRow("7 Jan 2024 at 6:00:00 PM", "n/a", "Write"),
	)
}

func TestSummarize_PositionalInputAndFilter(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, weekInput(t), "2024-01-07", "--output", out)
	require.NoError(t, err)

	want := "The summary has been saved to: " + out + "\n" +
		"\n" +
		"=== Last 500 Lines ===\n" +
		"2024-01-07,Read,120\n" +
		"2024-01-07,Write,30\n" +
		"Total for 2024-01-07: 150\n"
	assert.Equal(t, want, got)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Date,Assigned task,Duration\n2024-01-07,Read,120\n2024-01-07,Write,30", string(data))
}

func TestSummarize_NoFilterPrintsNoTotal(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, weekInput(t), "-o", out)
	require.NoError(t, err)
	assert.Contains(t, got, "2024-01-06,Read,45\n2024-01-07,Read,120\n2024-01-07,Write,30\n")
	assert.NotContains(t, got, "Total for")
}

func TestSummarize_HourMode(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, "--input", weekInput(t), "--date", "2024-01-07", "--hours", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "2024-01-07,Read,2.00\n2024-01-07,Write,0.50\n")
	assert.True(t, strings.HasSuffix(got, "Total for 2024-01-07: 2.50 hours\n"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Assigned task,Duration (hours)\n"))
}

func TestSummarize_HourModeFromConfig(t *testing.T) {
	app := testApp(t)
	app.Config.Hours = true
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, weekInput(t), "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "2024-01-06,Read,0.75\n")
}

func TestSummarize_RelativeDateFilter(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, weekInput(t), "today", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "Total for 2024-01-07: 150\n")

	got, err = execute(t, testApp(t), weekInput(t), "--date", "yesterday", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "Total for 2024-01-06: 45\n")
}

func TestSummarize_DateFlagWinsOverPositional(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, weekInput(t), "2024-01-06", "--date", "2024-01-07", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "Total for 2024-01-07: 150\n")
}

func TestSummarize_TailLines(t *testing.T) {
	app := testApp(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, app, weekInput(t), "--lines", "1", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "=== Last 1 Lines ===\n2024-01-07,Write,30\n")
	assert.NotContains(t, got, "2024-01-06")
}

func TestSummarize_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero lines", []string{"--lines", "0"}, "positive integer"},
		{"bad date flag", []string{"--date", "07/01/2024"}, "invalid date filter"},
		{"bad positional date", []string{"x.csv", "Jan 7"}, "invalid date filter"},
		{"too many args", []string{"a.csv", "today", "extra"}, "accepts at most 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, testApp(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSummarize_MissingInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.csv")

	_, err := execute(t, testApp(t), filepath.Join(dir, "nope.csv"), "--output", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read the file")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSummarize_DefaultsResolveAgainstWorkingDir(t *testing.T) {
	input := weekInput(t)
	dir := filepath.Dir(input)
	t.Chdir(dir)

	got, err := execute(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, got, "The summary has been saved to: ")
	assert.Contains(t, got, "output.csv\n")

	data, err := os.ReadFile(filepath.Join(dir, "output.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-01-07,Write,30")
}

func TestSummarize_Subcommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, testApp(t), "summarize", weekInput(t), "2024-01-06", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "Total for 2024-01-06: 45\n")
}

func TestSummarize_Stats(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")

	got, err := execute(t, testApp(t), weekInput(t), "--stats", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "INGEST")
	assert.Contains(t, got, "non finite duration")
}

func TestSummarize_AskDate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")

	app := testApp(t)
	_, err := execute(t, app, weekInput(t), "--ask-date", "--output", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")

	app = testApp(t)
	app.IsInputTTY = func() bool { return true }
	app.PromptDate = func() (string, error) { return "2024-01-07", nil }
	got, err := execute(t, app, weekInput(t), "--ask-date", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, got, "Total for 2024-01-07: 150\n")

	// An explicit filter skips the prompt.
	app = testApp(t)
	app.IsInputTTY = func() bool { return true }
	app.PromptDate = func() (string, error) {
		t.Fatal("prompt should not run when a filter is given")
		return "", nil
	}
	_, err = execute(t, app, weekInput(t), "2024-01-06", "--ask-date", "--output", out)
	require.NoError(t, err)
}

func TestSummarize_Browse(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")

	var browsed []string
	app := testApp(t)
	app.Browse = func(title, content string) error {
		browsed = append(browsed, title+"|"+content)
		return nil
	}

	_, err := execute(t, app, weekInput(t), "2024-01-06", "--browse", "--output", out)
	require.NoError(t, err)
	assert.Empty(t, browsed, "pager must not open when stdout is not a terminal")

	app.IsOutputTTY = func() bool { return true }
	_, err = execute(t, app, weekInput(t), "2024-01-06", "--browse", "--output", out)
	require.NoError(t, err)
	require.Len(t, browsed, 1)
	assert.True(t, strings.HasPrefix(browsed[0], "report.csv|# report.csv\n"))
	assert.Contains(t, browsed[0], "| Date | Assigned task | Duration |")
	assert.Contains(t, browsed[0], "| 2024-01-06 | Read | 45 |")
}

func TestHistory_DisabledByDefault(t *testing.T) {
	for _, args := range [][]string{
		{"history", "list"},
		{"history", "show", "abc"},
		{"history", "remove", "abc"},
	} {
		_, err := execute(t, testApp(t), args...)
		assert.ErrorIs(t, err, errHistoryDisabled)
	}
}

func TestHistory_ListShowRemove(t *testing.T) {
	app := testAppWithHistory(t)
	out := filepath.Join(t.TempDir(), "report.csv")

	_, err := execute(t, app, weekInput(t), "2024-01-07", "--output", out)
	require.NoError(t, err)

	runs, err := app.History.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, out, run.OutputPath)
	require.NotNil(t, run.FilterDate)
	assert.Equal(t, "2024-01-07", run.FilterDate.String())
	assert.Equal(t, 150.0, run.Total)
	assert.Equal(t, 1, run.Skipped[domain.SkipFilteredDate])
	assert.Equal(t, 1, run.Skipped[domain.SkipNonFiniteDuration])

	got, err := execute(t, app, "history", "list", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, got, "REPORT HISTORY")
	assert.Contains(t, got, run.ID[:8])
	assert.Contains(t, got, "2024-01-07")

	got, err = execute(t, app, "history", "show", run.ID)
	require.NoError(t, err)
	assert.Contains(t, got, run.ID)
	assert.Contains(t, got, "filtered_date=1")

	got, err = execute(t, app, "history", "remove", run.ID)
	require.NoError(t, err)
	assert.Equal(t, "Removed run "+run.ID+"\n", got)

	_, err = execute(t, app, "history", "remove", run.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err = execute(t, app, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, got, "No report runs recorded.")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(false, "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel), "no level configured means no logging")

	logger, err = newLogger(false, "warn")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))

	logger, err = newLogger(true, "warn")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(false, "chatty")
	assert.Error(t, err)
}

func TestRoot_BuildsLoggerFromConfig(t *testing.T) {
	app := testApp(t)
	app.Logger = nil
	app.Config.Log.Level = "bogus"

	_, err := execute(t, app, "history", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize logger")
}
