package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/alexanderramin/focustally/internal/report"
)

// FormatSaved is the confirmation printed after the report file is written.
func FormatSaved(path string) string {
	return "The summary has been saved to: " + path
}

// FormatTail renders the tail block shown after a run. n is the requested
// window, which may exceed len(lines).
func FormatTail(lines []string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Last %d Lines ===", n)
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(l)
	}
	return b.String()
}

// FormatFilterTotal is the single-date total line. value is already
// formatted for mode.
func FormatFilterTotal(date domain.CalendarDate, value string, mode domain.UnitMode) string {
	if mode == domain.UnitHours {
		return fmt.Sprintf("Total for %s: %s hours", date, value)
	}
	return fmt.Sprintf("Total for %s: %s", date, value)
}

// FormatStats renders the --stats diagnostics box. total is the grand
// total in duration units, read as minutes for the human-readable form.
func FormatStats(stats domain.IngestStats, entries int, total float64, mode domain.UnitMode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", Dim("Rows read:    "), Count(stats.RowsRead))
	fmt.Fprintf(&b, "%s %s  %s\n", Dim("Rows admitted:"), Count(stats.RowsAdmitted),
		RenderRatio(stats.RowsAdmitted, stats.RowsRead, 20))

	if stats.RowsSkipped() > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Skipped"))
		b.WriteString("\n")
		for _, reason := range domain.SkipReasons {
			n := stats.Skipped[reason]
			if n == 0 {
				continue
			}
			label := strings.ReplaceAll(string(reason), "_", " ")
			fmt.Fprintf(&b, "  %s %s\n", SkipReasonStyle(reason).Render(fmt.Sprintf("%-22s", label)), Count(n))
		}
	}

	if len(stats.MissingColumns) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Header problems"))
		b.WriteString("\n")
		for _, c := range stats.MissingColumns {
			b.WriteString("  " + StyleYellow.Render(c) + "\n")
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Entries:      "), Count(entries))
	fmt.Fprintf(&b, "%s %s %s  %s", Dim("Grand total:  "), Bold(report.FormatValue(total, mode)),
		Dim("("+FormatMinutes(total)+")"), ModeBadge(mode))

	return RenderBox("Ingest", b.String())
}
