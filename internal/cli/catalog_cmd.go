package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/importer"
	"github.com/alexanderramin/folio/internal/logging"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Run and seed a local project catalog",
		Long: `Manage a SQLite-backed project catalog that serves the same API the
UI reads from. Point FOLIO_API_BASE_URL at "catalog serve" to browse it.`,
	}

	cmd.AddCommand(
		newCatalogServeCmd(app),
		newCatalogAddCmd(app),
		newCatalogImportCmd(app),
	)

	return cmd
}

func newCatalogServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config()
			if cfg.APIKey == "" {
				return server.ErrNoAPIKey
			}
			if addr == "" {
				addr = cfg.Addr
			}

			log, err := logging.NewConsole(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			database, err := db.OpenDB(cfg.DB)
			if err != nil {
				return fmt.Errorf("opening catalog: %w", err)
			}
			defer database.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("catalog database", zap.String("path", cfg.DB))
			srv := server.New(server.Config{Addr: addr, APIKey: cfg.APIKey}, repository.NewSQLiteProjectRepo(database), log)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $FOLIO_ADDR)")

	return cmd
}

func newCatalogAddCmd(app *App) *cobra.Command {
	var fields projectFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project to the catalog",
		Long: `Add one project. Without --title and on a terminal, a form asks for
the fields instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fields.Title == "" && app.interactive() {
				if err := addProjectForm(&fields).RunWithContext(cmd.Context()); err != nil {
					return err
				}
			}

			seed := &importer.SeedFile{Projects: []importer.ProjectSeed{{
				Title:       fields.Title,
				Categories:  importer.Categories(fields.Categories),
				Description: fields.Description,
				Image:       fields.Image,
			}}}
			if errs := importer.ValidateSeed(seed); len(errs) > 0 {
				return errors.Join(errs...)
			}

			database, err := db.OpenDB(app.config().DB)
			if err != nil {
				return fmt.Errorf("opening catalog: %w", err)
			}
			defer database.Close()

			projects := importer.Convert(seed)
			if err := importer.Import(cmd.Context(), db.NewSQLiteUnitOfWork(database), projects); err != nil {
				return err
			}

			p := projects[0]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", formatter.StyleGreen.Render(fmt.Sprintf("#%d", p.ID)), p.Title)
			return nil
		},
	}

	bindProjectFlags(cmd.Flags(), &fields)

	return cmd
}

func bindProjectFlags(fs *pflag.FlagSet, f *projectFields) {
	fs.StringVar(&f.Title, "title", "", "Project title")
	fs.StringVar(&f.Categories, "categories", "", "Comma-separated categories")
	fs.StringVar(&f.Description, "description", "", "Description (newlines are kept)")
	fs.StringVar(&f.Image, "image", "", "Image URL")
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import projects from a YAML seed file",
		Long: `Import every project in FILE in one transaction. Each record is
validated first; nothing is written if any record is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.OpenDB(app.config().DB)
			if err != nil {
				return fmt.Errorf("opening catalog: %w", err)
			}
			defer database.Close()

			projects, err := importer.ImportFile(cmd.Context(), db.NewSQLiteUnitOfWork(database), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range projects {
				fmt.Fprintf(out, "  %s %s\n", formatter.StyleGreen.Render(fmt.Sprintf("#%d", p.ID)), p.Title)
			}
			fmt.Fprintf(out, "Imported %d projects\n", len(projects))
			return nil
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables folio reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Usage(cmd.OutOrStdout())
		},
	}
}
