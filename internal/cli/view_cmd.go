package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ateeq-afk/sahara/internal/cli/formatter"
	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view ID",
		Short: "Browse a saved estimate's phases interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := app.Estimates.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("estimate %q: %w", args[0], err)
			}
			p := tea.NewProgram(newScheduleViewer(est),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}
}

type viewerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Quit   key.Binding
}

func defaultViewerKeys() viewerKeyMap {
	return viewerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Detail: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.Quit}
}

// scheduleViewer is a read-only table of one estimate's phases. Enter
// toggles a detail pane with the selected phase's calendar dates.
type scheduleViewer struct {
	est        *domain.Estimate
	table      table.Model
	keys       viewerKeyMap
	showDetail bool
	quitting   bool
}

func newScheduleViewer(est *domain.Estimate) *scheduleViewer {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Phase", Width: 30},
		{Title: "Weeks", Width: 6},
		{Title: "Starts", Width: 12},
		{Title: "Ends", Width: 12},
	}

	s := &est.Schedule
	rows := make([]table.Row, 0, len(s.Phases)+1)
	for i, p := range s.Phases {
		from, to := scheduler.PhaseWindow(s, p)
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.Itoa(p.DurationWeeks),
			formatter.HumanDate(from),
			formatter.HumanDate(to),
		})
	}
	if s.SeasonalWeeks > 0 {
		rows = append(rows, table.Row{
			"",
			"Monsoon buffer",
			strconv.Itoa(s.SeasonalWeeks),
			formatter.HumanDate(s.EndDate.AddDate(0, 0, -7*s.SeasonalWeeks)),
			formatter.HumanDate(s.EndDate),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+2, 16)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorBlue).
		Bold(false)
	t.SetStyles(styles)

	return &scheduleViewer{est: est, table: t, keys: defaultViewerKeys()}
}

func (m *scheduleViewer) Init() tea.Cmd { return nil }

// viewerChrome is the number of lines around the table: title, summary,
// blank lines, help and a five-line detail pane.
const viewerChrome = 12

func (m *scheduleViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rows := len(m.table.Rows()) + 2
		m.table.SetHeight(max(min(rows, msg.Height-viewerChrome), 4))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *scheduleViewer) View() string {
	if m.quitting {
		return ""
	}
	s := &m.est.Schedule

	var b strings.Builder
	title := formatter.Bold(m.est.DisplayID())
	if m.est.Label != "" {
		title += "  " + m.est.Label
	}
	b.WriteString(title + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%s · %s · %s · %s → %s",
		m.est.Spec.ProjectType,
		formatter.Area(m.est.Spec.AreaSqFt),
		m.est.Spec.Complexity,
		formatter.HumanDate(s.StartDate),
		formatter.HumanDate(s.EndDate),
	)) + "\n\n")
	b.WriteString(m.table.View() + "\n")

	if m.showDetail {
		b.WriteString("\n" + m.detail() + "\n")
	}

	help := make([]string, 0, 4)
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n" + formatter.Dim(strings.Join(help, " · ")) + "\n")
	return b.String()
}

func (m *scheduleViewer) detail() string {
	s := &m.est.Schedule
	i := m.table.Cursor()
	if i < 0 || i >= len(s.Phases) {
		if s.SeasonalImpact {
			return formatter.SeasonalNote(s)
		}
		return ""
	}
	p := s.Phases[i]
	from, to := scheduler.PhaseWindow(s, p)
	return fmt.Sprintf("%s\n%s  week %d to %d (%s)\n%s  %s → %s\n%s  %s",
		formatter.Header(p.Name),
		formatter.Dim("Span  "), p.StartWeek, p.EndWeek, formatter.Weeks(p.DurationWeeks),
		formatter.Dim("Dates "), formatter.HumanDate(from), formatter.HumanDate(to),
		formatter.Dim("Share "), formatter.RenderShare(p.SharePct(s.TotalWeeks), 16),
	)
}
