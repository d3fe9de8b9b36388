package cli

import (
	"time"

	"github.com/Ateeq-afk/sahara/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services CLI commands run against.
type App struct {
	Estimates service.EstimateService
	Exports   service.ExportService

	// IsInteractive reports whether stdin is a terminal, so estimate can
	// fall back to a form when no flags are given. Nil means never.
	IsInteractive func() bool

	// Now supplies today's date for the default start date. Nil means
	// time.Now.
	Now func() time.Time
}

func (a *App) today() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "sahara" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sahara",
		Short:         "Construction project timeline estimator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEstimateCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
		newCatalogCmd(app),
		newViewCmd(app),
	)

	return root
}
