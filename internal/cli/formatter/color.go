package formatter

import (
	"fmt"
	"strings"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ComplexityStyle colors a complexity level from light (green) to heavy (red).
func ComplexityStyle(c domain.Complexity) lipgloss.Style {
	switch c {
	case domain.ComplexitySimple:
		return StyleGreen
	case domain.ComplexityStandard:
		return StyleYellow
	case domain.ComplexityComplex:
		return StyleRed
	default:
		return StyleDim
	}
}

// ComplexityBadge returns a colored label such as "● STANDARD".
func ComplexityBadge(c domain.Complexity) string {
	return ComplexityStyle(c).Render("● " + strings.ToUpper(string(c)))
}

// ProjectTypeBadge returns a capitalized, purple-styled project type label.
func ProjectTypeBadge(t domain.ProjectType) string {
	s := string(t)
	if s == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
