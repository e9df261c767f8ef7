package cli

import (
	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the dependencies shared by all commands and screens.
type App struct {
	Catalog catalog.Catalog
	Profile *domain.Profile
	Config  *config.Config
	Logger  *zap.Logger

	// IsInteractive reports whether stdin is a terminal. When it returns
	// false, commands print instead of starting the TUI.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) profile() *domain.Profile {
	if a.Profile == nil {
		return profile.Default()
	}
	return a.Profile
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		return &config.Config{}
	}
	return a.Config
}

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "A portfolio for the terminal",
		Long: `folio shows a short profile and a browsable list of projects
fetched from a project catalog. Run it in a terminal to open the
interactive view, or pipe it to print the landing screen.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return openRoute(cmd, app, route{kind: routeHome})
		},
	}

	root.AddCommand(
		newOpenCmd(app),
		newProjectsCmd(app),
		newCatalogCmd(app),
		newEnvCmd(),
	)

	return root
}
