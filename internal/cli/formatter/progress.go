package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a phase's share of the schedule like [███░░░░░] 25%.
func RenderShare(share float64, width int) string {
	share = clamp01(share)
	if width < 2 {
		width = 2
	}
	filled := int(share*float64(width) + 0.5)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", StyleBlue.Render(bar), share*100)
}

// RenderTimeline draws one Gantt row: the span [startWeek, endWeek) of a
// totalWeeks schedule scaled onto width cells. A span always covers at
// least one cell.
func RenderTimeline(startWeek, endWeek, totalWeeks, width int) string {
	if width < 1 {
		width = 1
	}
	if totalWeeks <= 0 || endWeek <= startWeek {
		return StyleDim.Render(strings.Repeat("·", width))
	}

	from := startWeek * width / totalWeeks
	to := (endWeek*width + totalWeeks - 1) / totalWeeks
	from = min(max(from, 0), width-1)
	to = min(max(to, from+1), width)

	return StyleDim.Render(strings.Repeat("·", from)) +
		StyleGreen.Render(strings.Repeat(filledBlock, to-from)) +
		StyleDim.Render(strings.Repeat("·", width-to))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
