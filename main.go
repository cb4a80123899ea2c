package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"blogview/app/config"
	"blogview/app/controllers"
	"blogview/app/logging"
	"blogview/app/models"
	"blogview/app/repositories"
	"blogview/app/routes"
	"blogview/app/services"
	"blogview/app/views"

	"github.com/dgraph-io/badger/v4"
	"github.com/urfave/cli/v2"
)

const CliVersion = "1.0.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "blogview",
		Usage:   "Serve a searchable blog homepage",
		Version: CliVersion,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP server",
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Enable debug logging",
					},
				),
				Action: serveAction,
			},
			{
				Name:  "list",
				Usage: "Print the homepage list, optionally filtered",
				Flags: append(storeFlags(),
					&cli.StringFlag{
						Name:    "q",
						Aliases: []string{"search"},
						Usage:   "Search term matched against titles and contents",
					},
				),
				Action: listAction,
			},
			{
				Name:      "show",
				Usage:     "Print one post",
				ArgsUsage: "<post-id>",
				Flags:     storeFlags(),
				Action:    showAction,
			},
			{
				Name:   "seed",
				Usage:  "Write the sample posts into the badger store given by --data-dir",
				Flags:  storeFlags(),
				Action: seedAction,
			},
			{
				Name:      "export",
				Usage:     "Dump the badger store given by --data-dir to a file",
				ArgsUsage: "<file>",
				Flags:     storeFlags(),
				Action:    exportAction,
			},
			{
				Name:      "import",
				Usage:     "Load a dump into the empty badger store given by --data-dir",
				ArgsUsage: "<file>",
				Flags:     storeFlags(),
				Action:    importAction,
			},
			{
				Name:  "version",
				Usage: "Show version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "blogview version %s\n", CliVersion)
					return nil
				},
			},
		},
	}
}

// storeFlags returns the configuration flags shared by every command that
// reads posts. Each command gets its own flag values.
func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML configuration file",
			EnvVars: []string{"BLOGVIEW_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "Badger directory holding the posts (built-in sample posts when empty)",
			EnvVars: []string{"BLOGVIEW_DATA_DIR"},
		},
	}
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("data-dir") {
		cfg.Data.Dir = c.String("data-dir")
	}
	return cfg, nil
}

// openRepository returns the configured post source. The returned closer
// releases the badger store, if any.
func openRepository(cfg config.Config, logger *slog.Logger) (repositories.PostRepository, io.Closer, error) {
	if cfg.Data.Dir == "" {
		repo, err := repositories.NewMemoryPostRepository(models.SamplePosts())
		if err != nil {
			return nil, nil, err
		}
		return repo, io.NopCloser(nil), nil
	}

	db, err := repositories.OpenDB(cfg.Data.Dir)
	if err != nil {
		return nil, nil, err
	}
	repo := repositories.NewBadgerPostRepository(db)
	seeded, err := repo.Seed(models.SamplePosts())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to seed %s: %w", cfg.Data.Dir, err)
	}
	if seeded {
		logger.Info("seeded empty store with sample posts", slog.String("dir", cfg.Data.Dir))
	}
	return repo, db, nil
}

func serveAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}
	if c.Bool("debug") {
		cfg.Log.Debug = true
	}

	logger, logCloser := logging.New(cfg.Log.Debug, cfg.Log.File)
	defer logCloser.Close()

	repo, repoCloser, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer repoCloser.Close()

	blogService, err := services.NewBlogService(repo, cfg.Session.Capacity, cfg.Session.TTL.Duration)
	if err != nil {
		return err
	}
	defer blogService.Close()

	renderer, err := views.NewRenderer(cfg.View.PreviewLength)
	if err != nil {
		return err
	}

	handler := routes.SetupRoutes(controllers.NewBlogController(blogService, renderer, logger), logger, cfg.Session.TTL.Duration)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting blog service", slog.String("addr", cfg.Server.Addr), slog.Int("posts", len(blogService.Posts())))
	return runServer(ctx, srv, cfg.Server.ShutdownTimeout.Duration, logger)
}

// newCLIView builds a view state over the configured dataset for the
// one-shot commands.
func newCLIView(c *cli.Context) (*services.ViewState, *views.Renderer, func(), error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := slog.New(logging.Handler(false, c.App.ErrWriter))

	repo, closer, err := openRepository(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	posts, err := repo.List()
	if err != nil {
		closer.Close()
		return nil, nil, nil, fmt.Errorf("failed to load posts: %w", err)
	}
	renderer, err := views.NewRenderer(cfg.View.PreviewLength)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}
	return services.NewViewState(posts), renderer, func() { closer.Close() }, nil
}

func listAction(c *cli.Context) error {
	view, renderer, done, err := newCLIView(c)
	if err != nil {
		return err
	}
	defer done()

	view.OnSearchChange(c.String("q"))
	return renderer.Text(c.App.Writer, view.Snapshot())
}

func showAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("show requires exactly one post id", 2)
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid post id %q", c.Args().First()), 2)
	}

	view, renderer, done, err := newCLIView(c)
	if err != nil {
		return err
	}
	defer done()

	post, ok := view.Lookup(id)
	if !ok {
		return cli.Exit(fmt.Sprintf("post %d not found", id), 3)
	}
	view.OnSelect(post)
	return renderer.Text(c.App.Writer, view.Snapshot())
}

func seedAction(c *cli.Context) error {
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	seeded, err := repositories.NewBadgerPostRepository(db).Seed(models.SamplePosts())
	if err != nil {
		return err
	}
	if seeded {
		fmt.Fprintln(c.App.Writer, "seeded store with sample posts")
	} else {
		fmt.Fprintln(c.App.Writer, "store already holds posts, nothing written")
	}
	return nil
}

// openStore opens the badger store required by the maintenance commands.
func openStore(c *cli.Context) (*badger.DB, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if cfg.Data.Dir == "" {
		return nil, cli.Exit(c.Command.Name+" requires --data-dir", 2)
	}
	return repositories.OpenDB(cfg.Data.Dir)
}

func exportAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("export requires a target file", 2)
	}
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Create(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if err := repositories.Backup(db, f); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "exported to %s\n", f.Name())
	return nil
}

func importAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("import requires a backup file", 2)
	}
	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.Restore(db, f); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "imported %s\n", f.Name())
	return nil
}
