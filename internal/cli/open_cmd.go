package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open [PATH]",
		Short: "Open the UI at a screen path",
		Long: `Open the interactive UI at /, /projects or /projects/{id}.
The screens above the target are opened beneath it, so esc walks back the
same way it would had you navigated there.`,
		Example: "  folio open /projects/3",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			r, err := parseRoute(path)
			if err != nil {
				return err
			}
			return openRoute(cmd, app, r)
		},
	}
}

// openRoute starts the TUI at r, or prints r's screen when not attached to
// a terminal.
func openRoute(cmd *cobra.Command, app *App, r route) error {
	if !app.interactive() {
		return printRoute(cmd, app, r)
	}
	return runTUI(cmd.Context(), app, r)
}

func runTUI(ctx context.Context, app *App, r route) error {
	app.logger().Info("starting ui", zap.Stringer("route", r))

	m := newAppModel(ctx, app, r)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func printRoute(cmd *cobra.Command, app *App, r route) error {
	switch r.kind {
	case routeProjects:
		return printProjectList(cmd, app)
	case routeProject:
		return printProject(cmd, app, r.rawID)
	default:
		_, err := fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHome(app.profile(), printWidth))
		return err
	}
}
