package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/importer"
	"github.com/alexanderramin/focustally/internal/repository"
	"github.com/alexanderramin/focustally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func newRequest(t *testing.T, input string) ReportRequest {
	t.Helper()
	return ReportRequest{
		InputPath:  input,
		OutputPath: filepath.Join(t.TempDir(), "output.csv"),
		Columns:    importer.DefaultColumns(),
		Mode:       domain.UnitRaw,
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_WritesSortedSummary(t *testing.T) {
	input := testutil.WriteCSV(t,
		testutil.ExportRow("2 Jan 2024 at 9:00:00 AM", "30", "Write"),
		testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "25", "Read"),
		testutil.ExportRow("1 Jan 2024 4:15:00 PM", "20", "Read"),
	)
	svc := NewReportService(nil, nil)
	req := newRequest(t, input)

	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	want := "Date,Assigned task,Duration\n2024-01-01,Read,45\n2024-01-02,Write,30"
	assert.Equal(t, want, readOutput(t, req.OutputPath))
	assert.Equal(t, want, res.Report.Text())
	assert.Nil(t, res.FilterTotal)
	assert.Empty(t, res.RunID)
}

func TestGenerate_DropsUnusableRowsSilently(t *testing.T) {
	input := testutil.WriteCSV(t,
		testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "25", "Read"),
		testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "abc", "Broken"),
		testutil.ExportRow("", "10", "NoStart"),
		testutil.ExportRow("yesterday-ish", "10", "BadStart"),
	)
	svc := NewReportService(nil, nil)
	req := newRequest(t, input)

	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Date,Assigned task,Duration\n2024-01-01,Read,25", readOutput(t, req.OutputPath))
	assert.Equal(t, 4, res.Stats.RowsRead)
	assert.Equal(t, 1, res.Stats.RowsAdmitted)
	assert.Equal(t, 1, res.Stats.Skipped[domain.SkipNonFiniteDuration])
	assert.Equal(t, 1, res.Stats.Skipped[domain.SkipMissingStart])
	assert.Equal(t, 1, res.Stats.Skipped[domain.SkipBadTimestamp])
}

func TestGenerate_FilterTotal(t *testing.T) {
	input := testutil.WriteCSV(t,
		testutil.ExportRow("7 Jan 2024 at 9:00:00 AM", "100", "Read"),
		testutil.ExportRow("7 Jan 2024 at 1:00:00 PM", "20", "Read"),
		testutil.ExportRow("7 Jan 2024 at 5:00:00 PM", "30", "Write"),
		testutil.ExportRow("8 Jan 2024 at 9:00:00 AM", "999", "Read"),
	)
	filter := domain.CalendarDate{Year: 2024, Month: 1, Day: 7}

	tests := []struct {
		mode  domain.UnitMode
		total string
		body  string
	}{
		{domain.UnitRaw, "150", "Date,Assigned task,Duration\n2024-01-07,Read,120\n2024-01-07,Write,30"},
		{domain.UnitHours, "2.50", "Date,Assigned task,Duration (hours)\n2024-01-07,Read,2.00\n2024-01-07,Write,0.50"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			req := newRequest(t, input)
			req.Filter = &filter
			req.Mode = tt.mode

			res, err := NewReportService(nil, nil).Generate(context.Background(), req)
			require.NoError(t, err)
			require.NotNil(t, res.FilterTotal)
			assert.Equal(t, tt.total, *res.FilterTotal)
			assert.Equal(t, tt.body, readOutput(t, req.OutputPath))
			assert.Equal(t, 1, res.Stats.Skipped[domain.SkipFilteredDate])
		})
	}
}

func TestGenerate_MissingInputIsFatal(t *testing.T) {
	req := newRequest(t, filepath.Join(t.TempDir(), "absent.csv"))

	_, err := NewReportService(nil, nil).Generate(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read the file")
	assert.Contains(t, err.Error(), "absent.csv")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, statErr := os.Stat(req.OutputPath)
	assert.True(t, os.IsNotExist(statErr), "no report should be written on fatal read errors")
}

func TestGenerate_CancelledContextWritesNothing(t *testing.T) {
	input := testutil.WriteCSV(t, testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "25", "Read"))
	req := newRequest(t, input)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReportService(nil, nil).Generate(ctx, req)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(req.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_ReportsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.csv")
	require.NoError(t, os.WriteFile(path, []byte("Start date,Minutes\n1 Jan 2024 at 3:45:12 PM,25\n"), 0644))

	res, err := NewReportService(nil, nil).Generate(context.Background(), newRequest(t, path))
	require.NoError(t, err)
	assert.Len(t, res.Stats.MissingColumns, 2)
	assert.Equal(t, 0, res.Summary.Len())
}

func TestGenerate_RecordsRunWhenHistoryEnabled(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	input := testutil.WriteCSV(t,
		testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "25", "Read"),
		testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "oops", "Read"),
	)

	res, err := NewReportService(nil, uow).Generate(context.Background(), newRequest(t, input))
	require.NoError(t, err)
	require.NotEmpty(t, res.RunID)

	run, err := repository.NewSQLiteRunRepo(database).GetByID(context.Background(), res.RunID)
	require.NoError(t, err)
	assert.Equal(t, input, run.InputPath)
	assert.Equal(t, 2, run.RowsRead)
	assert.Equal(t, 1, run.RowsAdmitted)
	assert.Equal(t, 1, run.Entries)
	assert.Equal(t, 25.0, run.Total)
	assert.Equal(t, 1, run.Skipped[domain.SkipNonFiniteDuration])
}

func TestGenerate_HistoryFailureRollsBackButKeepsReport(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("injected")}
	input := testutil.WriteCSV(t,
		testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "25", "Read"),
		testutil.ExportRow("", "25", "Read"),
	)
	req := newRequest(t, input)

	res, err := NewReportService(nil, uow).Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, res.RunID)
	assert.Equal(t, "Date,Assigned task,Duration\n2024-01-01,Read,25", readOutput(t, req.OutputPath))

	runs, err := repository.NewSQLiteRunRepo(database).ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs, "run row must be rolled back with its skip counts")
}

func TestGenerate_ObservesUseCase(t *testing.T) {
	obs := &recordingObserver{}
	input := testutil.WriteCSV(t, testutil.ExportRow("1 Jan 2024 at 3:45:12 PM", "25", "Read"))

	_, err := NewReportService(nil, nil, obs).Generate(context.Background(), newRequest(t, input))
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.Equal(t, "generate-report", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, 1, e.Fields["rows_read"])
	assert.Equal(t, 1, e.Fields["entries"])

	_, err = NewReportService(nil, nil, obs).Generate(context.Background(), newRequest(t, "/does/not/exist.csv"))
	require.Error(t, err)
	require.Len(t, obs.events, 2)
	assert.False(t, obs.events[1].Success)
	assert.Error(t, obs.events[1].Err)
}
