package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "02 Jan 2006"

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
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate formats t like "12 Aug 2024".
func HumanDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format(dateLayout)
}

// Weeks formats a week count with the right plural.
func Weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

// Months formats a month count with the right plural.
func Months(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}

// Area formats a floor area, dropping a zero fractional part.
func Area(sqft float64) string {
	if sqft == float64(int64(sqft)) {
		return fmt.Sprintf("%d sq ft", int64(sqft))
	}
	return fmt.Sprintf("%.1f sq ft", sqft)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// YesNo renders a flag as a green "yes" or a dim "no".
func YesNo(b bool) string {
	if b {
		return StyleGreen.Render("yes")
	}
	return Dim("no")
}
