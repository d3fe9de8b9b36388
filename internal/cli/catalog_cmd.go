package cli

import (
	"fmt"
	"os"

	"github.com/Ateeq-afk/sahara/internal/cli/formatter"
	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/template"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse phase templates",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogValidateCmd(),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List phase catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active := app.Estimates.Catalog()
			catalogs := template.Builtins()
			custom := true
			for _, c := range catalogs {
				if c.ID == active.ID {
					custom = false
				}
			}
			if custom {
				catalogs = append([]*template.Catalog{active}, catalogs...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalogList(catalogs, active.ID))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	var variantStr string

	cmd := &cobra.Command{
		Use:       "show TYPE",
		Short:     "Show the phases of a project type",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"construction", "interior", "renovation"},
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := domain.ParseProjectType(args[0])
			if err != nil {
				return err
			}
			catalog := app.Estimates.Catalog()
			if variantStr != "" {
				v, err := domain.ParseVariant(variantStr)
				if err != nil {
					return err
				}
				svc, err := app.Estimates.ForVariant(v)
				if err != nil {
					return err
				}
				catalog = svc.Catalog()
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(catalog, pt))
			return nil
		},
	}

	cmd.Flags().StringVar(&variantStr, "variant", "", "built-in detailed or compact (default: active catalog)")
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH",
		Short: "Check a catalog file, or every catalog file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			var catalogs []*template.Catalog
			var errs []error
			if info.IsDir() {
				catalogs, errs = template.LoadDir(path)
			} else {
				c, err := template.LoadValid(path)
				if err != nil {
					errs = append(errs, err)
				} else {
					catalogs = append(catalogs, c)
				}
			}

			out := cmd.OutOrStdout()
			for _, c := range catalogs {
				fmt.Fprintf(out, "%s %s (%s)\n", formatter.StyleGreen.Render("✔"), c.ID, c.Variant)
			}
			for _, e := range errs {
				fmt.Fprintf(out, "%s %v\n", formatter.StyleRed.Render("✖"), e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d invalid catalog file(s)", len(errs))
			}
			if len(catalogs) == 0 {
				return fmt.Errorf("no catalog files found in %s", path)
			}
			return nil
		},
	}
}
