package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderRatio renders part/whole as a bar like [████░░░░] 45%.
// The bar is colored based on the share: green >66%, yellow 33-66%, red <33%.
// A zero whole renders an empty bar at 0%.
func RenderRatio(part, whole int, width int) string {
	pct := 0.0
	if whole > 0 {
		pct = float64(part) / float64(whole)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
