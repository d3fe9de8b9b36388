package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/template"
)

// FormatCatalogList renders the available phase catalogs. The catalog
// whose ID equals activeID is marked.
func FormatCatalogList(catalogs []*template.Catalog, activeID string) string {
	headers := []string{"", "ID", "NAME", "VARIANT", "PHASES"}
	rows := make([][]string, 0, len(catalogs))
	for _, c := range catalogs {
		marker := " "
		if c.ID == activeID {
			marker = StyleGreen.Render("▸")
		}
		counts := make([]string, 0, len(domain.ProjectTypes))
		for _, t := range domain.ProjectTypes {
			counts = append(counts, fmt.Sprintf("%s %d", string(t)[:1], len(c.Phases[t])))
		}
		rows = append(rows, []string{
			marker,
			Bold(c.ID),
			c.Name,
			string(c.Variant),
			Dim(strings.Join(counts, " · ")),
		})
	}
	return RenderBox("Phase Catalogs", RenderTable(headers, rows))
}

// FormatCatalog renders the phase templates of one project type.
func FormatCatalog(c *template.Catalog, t domain.ProjectType) string {
	phases := c.PhasesFor(t)
	headers := []string{"#", "PHASE", "MIN", "MAX", "BASE"}
	rows := make([][]string, 0, len(phases))
	for i, p := range phases {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			p.Name,
			weeksValue(p.MinWeeks),
			weeksValue(p.MaxWeeks),
			Bold(weeksValue(p.BaseWeeks())),
		})
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", ProjectTypeBadge(t), Dim(c.Name)))
	if c.Description != "" {
		b.WriteString(Dim(c.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderTableRight(headers, rows, 0, 2, 3, 4))
	b.WriteString(Dim("Weeks before complexity, size and fast-track factors.") + "\n")
	return b.String()
}

func weeksValue(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
