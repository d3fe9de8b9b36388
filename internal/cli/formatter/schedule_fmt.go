package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
)

const timelineWidth = 24

// FormatSchedule renders a summary box followed by the phase table and,
// when the monsoon buffer applied, a note explaining the extra weeks.
func FormatSchedule(spec domain.ProjectSpecification, s *domain.Schedule) string {
	var b strings.Builder
	b.WriteString(RenderBox("Timeline Estimate", scheduleSummary(spec, s)))
	b.WriteString("\n\n")
	b.WriteString(Header("Phases"))
	b.WriteString("\n")
	b.WriteString(FormatPhaseTable(s))
	if note := SeasonalNote(s); note != "" {
		b.WriteString("\n" + note + "\n")
	}
	return b.String()
}

// FormatEstimate renders a saved estimate: its identity line, then the
// schedule.
func FormatEstimate(e *domain.Estimate) string {
	var b strings.Builder
	title := Bold(e.DisplayID())
	if e.Label != "" {
		title += "  " + StyleFg.Render(e.Label)
	}
	if !e.CreatedAt.IsZero() {
		title += "  " + Dim("saved "+HumanDate(e.CreatedAt))
	}
	b.WriteString(title + "\n\n")
	b.WriteString(FormatSchedule(e.Spec, &e.Schedule))
	return b.String()
}

func scheduleSummary(spec domain.ProjectSpecification, s *domain.Schedule) string {
	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			ProjectTypeBadge(spec.ProjectType),
			StyleFg.Render(fmt.Sprintf("%s (%s)", Area(spec.AreaSqFt), s.SizeCategory)),
			ComplexityBadge(spec.Complexity),
		),
		"",
		fmt.Sprintf("%s  %s", Dim("Duration "), Bold(fmt.Sprintf("%s (~%s)", Weeks(s.TotalWeeks), Months(s.TotalMonths)))),
		fmt.Sprintf("%s  %s → %s", Dim("Dates    "), HumanDate(s.StartDate), StyleGreen.Render(HumanDate(s.EndDate))),
		fmt.Sprintf("%s  %s", Dim("Fast track"), YesNo(spec.FastTrack)),
	}
	if spec.ProjectType == domain.ProjectConstruction {
		lines = append(lines, fmt.Sprintf("%s  %s", Dim("Monsoon  "), YesNo(spec.SeasonalBufferEnabled)))
	}
	if s.Variant != "" && s.Variant != domain.VariantDetailed {
		lines = append(lines, fmt.Sprintf("%s  %s", Dim("Breakdown"), string(s.Variant)))
	}
	return strings.Join(lines, "\n")
}

// FormatPhaseTable renders one row per phase with a Gantt bar scaled to
// the full schedule, including any seasonal buffer.
func FormatPhaseTable(s *domain.Schedule) string {
	headers := []string{"#", "PHASE", "WEEKS", "START", "END", "TIMELINE", "SHARE"}
	rows := make([][]string, 0, len(s.Phases)+1)
	for i, p := range s.Phases {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			p.Name,
			strconv.Itoa(p.DurationWeeks),
			"W" + strconv.Itoa(p.StartWeek),
			"W" + strconv.Itoa(p.EndWeek),
			RenderTimeline(p.StartWeek, p.EndWeek, s.TotalWeeks, timelineWidth),
			RenderShare(p.SharePct(s.TotalWeeks), 8),
		})
	}
	if s.SeasonalWeeks > 0 {
		start := s.PhaseWeeks()
		rows = append(rows, []string{
			"",
			StyleYellow.Render("Monsoon buffer"),
			strconv.Itoa(s.SeasonalWeeks),
			"W" + strconv.Itoa(start),
			"W" + strconv.Itoa(s.TotalWeeks),
			RenderTimeline(start, s.TotalWeeks, s.TotalWeeks, timelineWidth),
			RenderShare(float64(s.SeasonalWeeks)/float64(s.TotalWeeks), 8),
		})
	}
	return RenderTableRight(headers, rows, 0, 2)
}

// SeasonalNote explains a non-zero monsoon buffer; it is empty otherwise.
func SeasonalNote(s *domain.Schedule) string {
	if !s.SeasonalImpact {
		return ""
	}
	return StyleYellow.Render("▲ Monsoon impact") +
		Dim(fmt.Sprintf(": +%s added for work falling in June to September.", Weeks(s.SeasonalWeeks)))
}

// FormatComparison renders one row per complexity level for the same
// project, with the difference from standard.
func FormatComparison(spec domain.ProjectSpecification, results []scheduler.Comparison) string {
	baseline := 0
	for _, r := range results {
		if r.Complexity == domain.ComplexityStandard {
			baseline = r.Schedule.TotalWeeks
		}
	}

	headers := []string{"COMPLEXITY", "WEEKS", "MONTHS", "END DATE", "VS STANDARD"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			ComplexityBadge(r.Complexity),
			strconv.Itoa(r.Schedule.TotalWeeks),
			strconv.Itoa(r.Schedule.TotalMonths),
			HumanDate(r.Schedule.EndDate),
			weeksDelta(r.Schedule.TotalWeeks - baseline),
		})
	}

	title := fmt.Sprintf("%s  %s", ProjectTypeBadge(spec.ProjectType), StyleFg.Render(Area(spec.AreaSqFt)))
	return RenderBox("Complexity Comparison", title+"\n\n"+RenderTableRight(headers, rows, 1, 2, 4))
}

func weeksDelta(d int) string {
	switch {
	case d > 0:
		return StyleRed.Render(fmt.Sprintf("+%d wk", d))
	case d < 0:
		return StyleGreen.Render(fmt.Sprintf("%d wk", d))
	default:
		return Dim("--")
	}
}

// FormatEstimateList renders saved estimates, newest first as given.
func FormatEstimateList(estimates []*domain.Estimate) string {
	if len(estimates) == 0 {
		return Dim("No saved estimates.") + "\n"
	}
	headers := []string{"ID", "LABEL", "TYPE", "AREA", "COMPLEXITY", "WEEKS", "END", "SAVED"}
	rows := make([][]string, 0, len(estimates))
	for _, e := range estimates {
		label := e.Label
		if label == "" {
			label = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			Bold(label),
			ProjectTypeBadge(e.Spec.ProjectType),
			Area(e.Spec.AreaSqFt),
			ComplexityBadge(e.Spec.Complexity),
			strconv.Itoa(e.Schedule.TotalWeeks),
			HumanDate(e.Schedule.EndDate),
			Dim(HumanDate(e.CreatedAt)),
		})
	}
	return RenderTableRight(headers, rows, 5)
}
