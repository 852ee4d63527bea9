package formatter

import (
	"strings"

	"github.com/alexanderramin/focustally/internal/report"
)

var markdownCellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ")

// ReportMarkdown renders rep as a markdown document with one table, for
// display through a markdown renderer. The value column is right-aligned.
func ReportMarkdown(title string, rep *report.Report) string {
	var b strings.Builder

	b.WriteString("# " + title + "\n\n")

	cols := strings.SplitN(rep.Header, ",", 3)
	b.WriteString("|")
	for _, c := range cols {
		b.WriteString(" " + c + " |")
	}
	b.WriteString("\n| --- | --- | ---: |\n")

	for _, row := range rep.Rows {
		b.WriteString("|")
		for _, cell := range row {
			b.WriteString(" " + markdownCellEscaper.Replace(cell) + " |")
		}
		b.WriteString("\n")
	}

	if len(rep.Rows) == 0 {
		b.WriteString("\n_No sessions were admitted._\n")
	}
	return b.String()
}
