// Package cli implements the notebook and note command-line interfaces.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/notebook/internal/config"
	"github.com/aidanlsb/notebook/internal/dates"
	"github.com/aidanlsb/notebook/internal/note"
	"github.com/aidanlsb/notebook/internal/program"
	"github.com/aidanlsb/notebook/internal/registry"
	"github.com/aidanlsb/notebook/internal/ui"
)

// Env holds the collaborators commands run against. Zero fields get the
// process defaults.
type Env struct {
	// Config skips loading from disk when set.
	Config *config.Config
	Runner program.Runner
	Logger *slog.Logger

	Stdin           io.Reader
	StdinIsTerminal func() bool
	Stderr          io.Writer

	Now       func() time.Time
	Clipboard func(string) error
}

func (e Env) withDefaults() Env {
	if e.Stdin == nil {
		e.Stdin = os.Stdin
	}
	if e.StdinIsTerminal == nil {
		e.StdinIsTerminal = func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Clipboard == nil {
		e.Clipboard = clipboard.WriteAll
	}
	return e
}

// app is the state shared by one command tree.
type app struct {
	env Env

	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
	dates  *dates.Resolver
}

func newApp(env Env) *app {
	return &app{env: env.withDefaults()}
}

// setup loads configuration once per invocation.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = a.env.Logger
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(a.env.Stderr, &slog.HandlerOptions{Level: level}))
	}

	if a.cfg != nil && a.dates != nil {
		return nil
	}
	cfg := a.env.Config
	if cfg == nil {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	a.cfg = cfg
	a.dates = dates.NewResolver(cfg.Dates)
	ui.ConfigureTheme(cfg.Accent)

	a.logger.Debug("configuration loaded",
		slog.String("source", cfg.Source),
		slog.String("notes_dir", cfg.NotesDir),
		slog.String("daily_dir", cfg.DailyDir),
		slog.String("registry", cfg.RegistryFile))
	return nil
}

func (a *app) runner() program.Runner {
	if a.env.Runner != nil {
		return a.env.Runner
	}
	return &program.Exec{Logger: a.logger}
}

func (a *app) tools() note.Tools {
	return note.Tools{
		Runner:    a.runner(),
		Editor:    a.cfg.Editor,
		Pager:     a.cfg.Pager,
		Reveal:    a.cfg.Reveal,
		Converter: a.cfg.Converter,
		Logger:    a.logger,
	}
}

func (a *app) registry() *registry.Registry {
	return registry.Open(a.cfg.RegistryFile)
}

func (a *app) noteResolver() *note.Resolver {
	return note.NewResolver(a.dates, a.cfg.DirectoryFor)
}

func (a *app) persistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Log resolved paths and spawned commands to stderr")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// NewNotebookCmd builds the notebook command tree.
func NewNotebookCmd(env Env) *cobra.Command {
	a := newApp(env)

	root := &cobra.Command{
		Use:   "notebook",
		Short: "Manage your notebooks in markdown",
		Long: `Manage markdown notebooks: directories of notes with an optional
.notebook manifest naming them.

Without a command, prints details of the current notebook.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDetails(cmd)
		},
	}
	a.persistentFlags(root)

	root.AddCommand(
		a.newListCmd(),
		a.newBooksCmd(),
		a.newUseCmd(),
		a.newCreateCmd(),
		a.newOpenCmd(),
		a.newShowCmd(),
		a.newBindCmd(),
		a.newExportCmd(),
		a.newNoteCmd("note"),
		a.newPathCmd(),
		newVersionCmd("notebook"),
	)
	return root
}

// NewNoteCmd builds the standalone note command.
func NewNoteCmd(env Env) *cobra.Command {
	a := newApp(env)
	root := a.newNoteCmd("note")
	a.persistentFlags(root)
	root.Version = currentVersionInfo().Version
	return root
}

// ExecuteNotebook runs the notebook CLI.
func ExecuteNotebook() error {
	return execute(NewNotebookCmd(Env{}))
}

// ExecuteNote runs the note CLI.
func ExecuteNote() error {
	return execute(NewNoteCmd(Env{}))
}

func execute(root *cobra.Command) error {
	err := root.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), ui.Error(err.Error()))
	}
	return err
}
