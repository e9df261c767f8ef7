package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/fetch"
	"github.com/spf13/cobra"
)

// printWidth is the wrap width used when printing outside the TUI.
const printWidth = 80

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Print projects from the catalog",
	}

	cmd.AddCommand(
		newProjectsListCmd(app),
		newProjectsShowCmd(app),
	)

	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all projects as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printProjectList(cmd, app)
		},
	}
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printProject(cmd, app, args[0])
		},
	}
}

// printProjectList runs the list lifecycle once and prints its terminal
// state. An error state is returned as the command's error.
func printProjectList(cmd *cobra.Command, app *App) error {
	projects := fetch.NewCollection[domain.Project](noProjectsMessage)
	_, run := projects.Start(cmd.Context(), app.Catalog.ListProjects)

	stop := startPrintSpinner(cmd, app, formatter.LoadingProjects)
	projects.Apply(run())
	stop()

	out := cmd.OutOrStdout()
	switch s := projects.State(); s.Phase {
	case fetch.PhaseError:
		return s.Err
	case fetch.PhaseEmpty:
		_, err := fmt.Fprintln(out, s.Message)
		return err
	default:
		_, err := fmt.Fprintln(out, formatter.FormatProjectTable(s.Data))
		return err
	}
}

// printProject runs the detail lifecycle once for raw and prints it.
func printProject(cmd *cobra.Command, app *App, raw string) error {
	project := fetch.NewItem[*domain.Project]()

	if id, err := fetch.ParseID(raw); err != nil {
		project.Fail(err)
	} else {
		_, run := project.Start(cmd.Context(), func(ctx context.Context) (*domain.Project, error) {
			return app.Catalog.GetProject(ctx, id)
		})
		stop := startPrintSpinner(cmd, app, formatter.LoadingProject)
		project.Apply(run())
		stop()
	}

	s := project.State()
	if s.Phase == fetch.PhaseError {
		return s.Err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetail(s, formatter.DetailOptions{Width: printWidth}))
	return err
}

// startPrintSpinner animates on stderr while attached to a terminal and
// returns the function that clears it.
func startPrintSpinner(cmd *cobra.Command, app *App, message string) func() {
	if !app.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}
