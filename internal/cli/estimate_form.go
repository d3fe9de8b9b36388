package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ateeq-afk/sahara/internal/cli/formatter"
	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// saharaHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func saharaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// estimateFormValues are the raw answers of the interactive estimate form.
type estimateFormValues struct {
	ProjectType string
	Area        string
	Complexity  string
	StartDate   string
	FastTrack   bool
	Seasonal    bool
}

func defaultFormValues(today time.Time) estimateFormValues {
	return estimateFormValues{
		ProjectType: string(domain.ProjectConstruction),
		Area:        "2500",
		Complexity:  string(domain.ComplexityStandard),
		StartDate:   today.Format(dateLayout),
	}
}

// spec converts the answers into a specification. The seasonal answer is
// ignored for non-construction projects, whose form hides the question.
func (v estimateFormValues) spec() (domain.ProjectSpecification, error) {
	pt, err := domain.ParseProjectType(v.ProjectType)
	if err != nil {
		return domain.ProjectSpecification{}, err
	}
	c, err := domain.ParseComplexity(v.Complexity)
	if err != nil {
		return domain.ProjectSpecification{}, err
	}
	area, err := parseArea(v.Area)
	if err != nil {
		return domain.ProjectSpecification{}, err
	}
	start, err := parseDate(v.StartDate)
	if err != nil {
		return domain.ProjectSpecification{}, err
	}
	return domain.ProjectSpecification{
		ProjectType:           pt,
		AreaSqFt:              area,
		Complexity:            c,
		StartDate:             start,
		FastTrack:             v.FastTrack,
		SeasonalBufferEnabled: v.Seasonal && pt == domain.ProjectConstruction,
	}, nil
}

func parseArea(s string) (float64, error) {
	area, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid area %q: enter a number of square feet", s)
	}
	return area, nil
}

// validateFormArea keeps the form within the offered area range.
func validateFormArea(s string) error {
	area, err := parseArea(s)
	if err != nil {
		return err
	}
	if area < domain.MinAreaSqFt || area > domain.MaxAreaSqFt {
		return fmt.Errorf("enter an area between %d and %d sq ft", domain.MinAreaSqFt, domain.MaxAreaSqFt)
	}
	return nil
}

func validateDate(s string) error {
	_, err := parseDate(s)
	return err
}

func newEstimateForm(v *estimateFormValues) *huh.Form {
	typeOptions := []huh.Option[string]{
		huh.NewOption("New construction", string(domain.ProjectConstruction)),
		huh.NewOption("Interior fit-out", string(domain.ProjectInterior)),
		huh.NewOption("Renovation", string(domain.ProjectRenovation)),
	}
	complexityOptions := []huh.Option[string]{
		huh.NewOption("Simple", string(domain.ComplexitySimple)),
		huh.NewOption("Standard", string(domain.ComplexityStandard)),
		huh.NewOption("Complex", string(domain.ComplexityComplex)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project Type").
				Options(typeOptions...).
				Value(&v.ProjectType),
			huh.NewInput().
				Title("Built-up Area (sq ft)").
				Description(fmt.Sprintf("%d to %d", domain.MinAreaSqFt, domain.MaxAreaSqFt)).
				Placeholder("2500").
				Value(&v.Area).
				Validate(validateFormArea),
			huh.NewSelect[string]().
				Title("Complexity").
				Options(complexityOptions...).
				Value(&v.Complexity),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Value(&v.StartDate).
				Validate(validateDate),
			huh.NewConfirm().
				Title("Fast-track?").
				Description("Parallel crews; roughly 20% shorter phases").
				Affirmative("Yes").
				Negative("No").
				Value(&v.FastTrack),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add monsoon buffer?").
				Description("Extra time for work falling in June to September").
				Affirmative("Yes").
				Negative("No").
				Value(&v.Seasonal),
		).WithHideFunc(func() bool {
			return v.ProjectType != string(domain.ProjectConstruction)
		}),
	).WithTheme(saharaHuhTheme()).WithShowHelp(false)
}
