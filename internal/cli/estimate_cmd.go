package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Ateeq-afk/sahara/internal/cli/formatter"
	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/spf13/cobra"
)

// specFlags are the flags that describe the project itself. When none is
// given on a terminal, estimate asks for them with a form instead.
var specFlags = []string{"type", "area", "complexity", "start", "fast-track", "seasonal-buffer"}

func newEstimateCmd(app *App) *cobra.Command {
	var (
		typeStr       string
		area          float64
		complexityStr string
		start         time.Time
		fastTrack     bool
		seasonal      bool
		variantStr    string
		compare       bool
		save          bool
		label         string
		asJSON        bool
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a project timeline",
		Example: `  sahara estimate --type construction --area 2500
  sahara estimate --type construction --area 2500 --start 2025-04-01 --seasonal-buffer
  sahara estimate --type interior --area 1200 --compare
  sahara estimate --type renovation --area 4000 --complexity complex --save --label "Villa 12"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var spec domain.ProjectSpecification
			useForm := interactive || (!anyChanged(cmd.Flags(), specFlags...) && app.interactive())
			if useForm {
				vals := defaultFormValues(app.today())
				if err := newEstimateForm(&vals).Run(); err != nil {
					return err
				}
				s, err := vals.spec()
				if err != nil {
					return err
				}
				spec = s
			} else {
				s, err := specFromFlags(typeStr, area, complexityStr, start, app.today())
				if err != nil {
					return err
				}
				s.FastTrack = fastTrack
				s.SeasonalBufferEnabled = seasonal
				spec = s
			}

			for _, w := range specWarnings(spec) {
				fmt.Fprintf(cmd.ErrOrStderr(), "  WARNING: %s\n", w)
			}

			svc := app.Estimates
			if cmd.Flags().Changed("variant") {
				v, err := domain.ParseVariant(variantStr)
				if err != nil {
					return err
				}
				if svc, err = svc.ForVariant(v); err != nil {
					return err
				}
			}

			if compare {
				results, err := svc.Compare(ctx, spec)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, results)
				}
				fmt.Fprintln(out, formatter.FormatComparison(spec, results))
				return nil
			}

			if save {
				est, err := svc.Save(ctx, label, spec)
				if err != nil {
					return err
				}
				if asJSON {
					return app.Exports.ExportJSON(ctx, est, out)
				}
				fmt.Fprint(out, formatter.FormatSchedule(est.Spec, &est.Schedule))
				fmt.Fprintf(out, "\n%s %s\n", formatter.StyleGreen.Render("Saved as"), formatter.Bold(est.DisplayID()))
				return nil
			}

			sched, err := svc.Estimate(ctx, spec)
			if err != nil {
				return err
			}
			if asJSON {
				return app.Exports.ExportJSON(ctx, &domain.Estimate{Spec: spec, Schedule: *sched}, out)
			}
			fmt.Fprint(out, formatter.FormatSchedule(spec, sched))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&typeStr, "type", "t", "", "project type: construction, interior or renovation")
	f.Float64VarP(&area, "area", "a", 0, "built-up area in square feet")
	f.StringVarP(&complexityStr, "complexity", "c", string(domain.ComplexityStandard), "simple, standard or complex")
	f.Var(newDateValue(&start), "start", "start date YYYY-MM-DD (default today)")
	f.BoolVar(&fastTrack, "fast-track", false, "parallel crews; about 20% shorter phases")
	f.BoolVar(&seasonal, "seasonal-buffer", false, "add a monsoon buffer (construction only)")
	f.StringVar(&variantStr, "variant", "", "built-in phase breakdown: detailed or compact (overrides SAHARA_CATALOG)")
	f.BoolVar(&compare, "compare", false, "compare all complexity levels")
	f.BoolVar(&save, "save", false, "save the estimate to history")
	f.StringVar(&label, "label", "", "label for a saved estimate")
	f.BoolVar(&asJSON, "json", false, "print JSON instead of tables")
	f.BoolVarP(&interactive, "interactive", "i", false, "answer questions instead of passing flags")

	cmd.MarkFlagsMutuallyExclusive("compare", "save")

	return cmd
}

func specFromFlags(typeStr string, area float64, complexityStr string, start, today time.Time) (domain.ProjectSpecification, error) {
	if typeStr == "" {
		return domain.ProjectSpecification{}, fmt.Errorf("--type is required (construction, interior or renovation)")
	}
	pt, err := domain.ParseProjectType(typeStr)
	if err != nil {
		return domain.ProjectSpecification{}, err
	}
	c, err := domain.ParseComplexity(complexityStr)
	if err != nil {
		return domain.ProjectSpecification{}, err
	}
	if start.IsZero() {
		start = today
	}
	spec := domain.ProjectSpecification{
		ProjectType: pt,
		AreaSqFt:    area,
		Complexity:  c,
		StartDate:   start,
	}
	if area == 0 {
		return spec, fmt.Errorf("--area is required")
	}
	return spec, spec.Validate()
}

// specWarnings lists inputs the engine accepts but that deserve a second
// look. Both the flag and form paths go through it.
func specWarnings(spec domain.ProjectSpecification) []string {
	var warnings []string
	if spec.AreaSqFt < domain.MinAreaSqFt || spec.AreaSqFt > domain.MaxAreaSqFt {
		warnings = append(warnings, fmt.Sprintf("area %s is outside the calibrated range %d to %d sq ft",
			formatter.Area(spec.AreaSqFt), domain.MinAreaSqFt, domain.MaxAreaSqFt))
	}
	if spec.SeasonalBufferEnabled && !spec.SeasonalBufferApplies() {
		warnings = append(warnings, "the monsoon buffer only applies to construction projects; ignoring it")
	}
	return warnings
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
