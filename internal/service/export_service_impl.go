package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ExportFormat names a file format an estimate can be written as.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportJSON ExportFormat = "json"
)

// ParseExportFormat accepts "xlsx" or "json", case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportXLSX, ExportJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want xlsx or json)", s)
}

const (
	summarySheet = "Summary"
	phasesSheet  = "Phases"
	exportDate   = "2006-01-02"
)

type exportService struct {
	observer UseCaseObserver
}

func NewExportService(observers ...UseCaseObserver) ExportService {
	return &exportService{observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, est *domain.Estimate, format ExportFormat, w io.Writer) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"format": string(format)}
	if est != nil {
		fields["estimate_id"] = est.ID
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-estimate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	switch format {
	case ExportXLSX:
		return s.ExportXLSX(ctx, est, w)
	case ExportJSON:
		return s.ExportJSON(ctx, est, w)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// ExportXLSX writes a workbook with a Summary sheet of key/value rows and a
// Phases sheet with one row per phase.
func (s *exportService) ExportXLSX(_ context.Context, est *domain.Estimate, w io.Writer) error {
	if est == nil {
		return fmt.Errorf("no estimate to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	for i, row := range summaryRows(est) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(phasesSheet); err != nil {
		return fmt.Errorf("creating phases sheet: %w", err)
	}
	header := []any{"#", "Phase", "Start Week", "End Week", "Weeks", "Share %"}
	if err := f.SetSheetRow(phasesSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing phases header: %w", err)
	}
	sched := est.Schedule
	for i, p := range sched.Phases {
		row := []any{i + 1, p.Name, p.StartWeek, p.EndWeek, p.DurationWeeks, sharePct(p, sched.TotalWeeks)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(phasesSheet, cell, &row); err != nil {
			return fmt.Errorf("writing phase %q: %w", p.Name, err)
		}
	}
	if sched.SeasonalWeeks > 0 {
		row := []any{"", "Monsoon buffer", sched.PhaseWeeks(), sched.TotalWeeks, sched.SeasonalWeeks,
			math.Round(float64(sched.SeasonalWeeks)/float64(sched.TotalWeeks)*1000) / 10}
		cell, err := excelize.CoordinatesToCellName(1, len(sched.Phases)+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(phasesSheet, cell, &row); err != nil {
			return fmt.Errorf("writing seasonal buffer row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func summaryRows(est *domain.Estimate) [][]any {
	sched := est.Schedule
	rows := [][]any{
		{"Estimate ID", est.ID},
		{"Label", est.Label},
		{"Project Type", string(est.Spec.ProjectType)},
		{"Area (sq ft)", est.Spec.AreaSqFt},
		{"Size Category", string(sched.SizeCategory)},
		{"Complexity", string(est.Spec.Complexity)},
		{"Fast Track", yesNo(est.Spec.FastTrack)},
		{"Seasonal Buffer", yesNo(est.Spec.SeasonalBufferEnabled)},
		{"Variant", string(sched.Variant)},
		{"Start Date", sched.StartDate.Format(exportDate)},
		{"End Date", sched.EndDate.Format(exportDate)},
		{"Total Weeks", sched.TotalWeeks},
		{"Total Months", sched.TotalMonths},
		{"Seasonal Weeks", sched.SeasonalWeeks},
	}
	if !est.CreatedAt.IsZero() {
		rows = append(rows, []any{"Created", est.CreatedAt.UTC().Format(time.RFC3339)})
	}
	return rows
}

func sharePct(p domain.PhaseResult, totalWeeks int) float64 {
	return math.Round(p.SharePct(totalWeeks)*1000) / 10
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

type exportDocument struct {
	ID        string                      `json:"id,omitempty"`
	Label     string                      `json:"label,omitempty"`
	CreatedAt *time.Time                  `json:"created_at,omitempty"`
	Spec      domain.ProjectSpecification `json:"specification"`
	Schedule  domain.Schedule             `json:"schedule"`
}

// ExportJSON writes the estimate as an indented JSON document.
func (s *exportService) ExportJSON(_ context.Context, est *domain.Estimate, w io.Writer) error {
	if est == nil {
		return fmt.Errorf("no estimate to export")
	}
	doc := exportDocument{
		ID:       est.ID,
		Label:    est.Label,
		Spec:     est.Spec,
		Schedule: est.Schedule,
	}
	if !est.CreatedAt.IsZero() {
		created := est.CreatedAt.UTC()
		doc.CreatedAt = &created
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding estimate: %w", err)
	}
	return nil
}
