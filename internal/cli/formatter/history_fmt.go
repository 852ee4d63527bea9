package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/report"
)

const historyPathWidth = 32

// FormatHistory renders recorded runs as a table, newest first as given.
func FormatHistory(runs []*domain.ReportRun, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No report runs recorded.") + "\n"
	}

	headers := []string{"ID", "WHEN", "INPUT", "FILTER", "MODE", "ENTRIES", "TOTAL"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		filter := Dim("--")
		if r.FilterDate != nil {
			filter = r.FilterDate.String()
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			RelativeTimeFrom(r.CreatedAt, now),
			ShortenPath(r.InputPath, historyPathWidth),
			filter,
			string(r.Mode),
			Count(r.Entries),
			report.FormatValue(r.Total, r.Mode),
		})
	}

	return Header("Report history") + "\n" + RenderTableAligned(headers, rows, []int{5, 6})
}

// FormatRunDetail renders one run with its skip breakdown.
func FormatRunDetail(r *domain.ReportRun, now time.Time) string {
	var b strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-10s", label+":")), value)
	}

	line("ID", r.ID)
	line("When", fmt.Sprintf("%s (%s)", r.CreatedAt.Local().Format("2006-01-02 15:04:05"), RelativeTimeFrom(r.CreatedAt, now)))
	line("Input", r.InputPath)
	line("Output", r.OutputPath)
	if r.FilterDate != nil {
		line("Filter", r.FilterDate.String())
	} else {
		line("Filter", Dim("none"))
	}
	line("Mode", ModeBadge(r.Mode))
	line("Rows", fmt.Sprintf("%s read, %s admitted", Count(r.RowsRead), Count(r.RowsAdmitted)))
	line("Entries", Count(r.Entries))
	line("Total", report.FormatValue(r.Total, r.Mode))

	var skips []string
	for _, reason := range domain.SkipReasons {
		if n := r.Skipped[reason]; n > 0 {
			skips = append(skips, SkipReasonStyle(reason).Render(fmt.Sprintf("%s=%s", reason, Count(n))))
		}
	}
	if len(skips) > 0 {
		fmt.Fprintf(&b, "%s %s", Dim(fmt.Sprintf("%-10s", "Skipped:")), strings.Join(skips, " "))
	} else {
		fmt.Fprintf(&b, "%s %s", Dim(fmt.Sprintf("%-10s", "Skipped:")), Dim("none"))
	}

	return RenderBox("Report run", b.String())
}
