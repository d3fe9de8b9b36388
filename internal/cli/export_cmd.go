package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ateeq-afk/sahara/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var formatStr, outPath string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a saved estimate as xlsx or json",
		Example: `  sahara export 550e8400 --format xlsx
  sahara export 550e8400 --out villa.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := resolveExportFormat(formatStr, outPath)
			if err != nil {
				return err
			}

			est, err := app.Estimates.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("estimate %q: %w", args[0], err)
			}

			if outPath == "" && format == service.ExportJSON {
				return app.Exports.Export(ctx, est, format, cmd.OutOrStdout())
			}
			if outPath == "" {
				outPath = est.DisplayID() + "." + string(format)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			if err := app.Exports.Export(ctx, est, format, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", est.DisplayID(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", "", "xlsx or json (default from --out extension, else json)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (json defaults to stdout)")
	return cmd
}

// resolveExportFormat prefers an explicit format, then the output file's
// extension, then JSON.
func resolveExportFormat(formatStr, outPath string) (service.ExportFormat, error) {
	if formatStr != "" {
		return service.ParseExportFormat(formatStr)
	}
	if ext := strings.TrimPrefix(filepath.Ext(outPath), "."); ext != "" {
		return service.ParseExportFormat(ext)
	}
	return service.ExportJSON, nil
}
