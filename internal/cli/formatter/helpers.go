package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeTimeFrom describes t relative to now, e.g. "3 hours ago".
func RelativeTimeFrom(t, now time.Time) string {
	if now.Sub(t) < time.Minute && now.Sub(t) >= 0 {
		return "Just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Count renders n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// FormatMinutes renders a minute count as "2h 5m". Fractions are rounded
// to the nearest minute.
func FormatMinutes(minutes float64) string {
	min := int(math.Round(minutes))
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%sh %dm", humanize.Comma(int64(h)), m)
	}
	if h > 0 {
		return fmt.Sprintf("%sh", humanize.Comma(int64(h)))
	}
	return fmt.Sprintf("%dm", m)
}

// ShortenPath keeps the last two path elements of long paths.
func ShortenPath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	parts := strings.Split(p, "/")
	if len(parts) > 2 {
		short := ".../" + strings.Join(parts[len(parts)-2:], "/")
		if len(short) <= max {
			return short
		}
	}
	if max < 4 {
		return p
	}
	return "..." + p[len(p)-(max-3):]
}
