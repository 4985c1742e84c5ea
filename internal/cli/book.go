package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/notebook/internal/book"
	"github.com/aidanlsb/notebook/internal/config"
	"github.com/aidanlsb/notebook/internal/note"
	"github.com/aidanlsb/notebook/internal/registry"
	"github.com/aidanlsb/notebook/internal/ui"
)

// defaultLocation is where a book goes without a location or notes dir.
const defaultLocation = "~/Notes"

func (a *app) currentBook() (*book.Book, error) {
	dir, err := a.registry().Current()
	if errors.Is(err, registry.ErrNoSelection) {
		return nil, fmt.Errorf("%w\n\nRun 'notebook use <directory>' or 'notebook create' first", err)
	}
	if err != nil {
		return nil, err
	}
	return book.New(dir, a.tools()), nil
}

// bookAt resolves a directory argument against the notes directory. An
// empty argument means the current book.
func (a *app) bookAt(dir string) (*book.Book, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return a.currentBook()
	}
	dir = config.ExpandHome(dir)
	if !filepath.IsAbs(dir) {
		if a.cfg.NotesDir == "" {
			return nil, book.ErrEnvironmentNotConfigured
		}
		dir = filepath.Join(a.cfg.NotesDir, dir)
	}
	return book.New(dir, a.tools()), nil
}

func (a *app) runDetails(cmd *cobra.Command) error {
	b, err := a.currentBook()
	if err != nil {
		return err
	}
	details, err := b.Details(a.env.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), details)
	return nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [directory]",
		Short: "List the notes in a directory of your notes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := book.New(firstArg(args), a.tools()).List(a.cfg.NotesDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "  "))
			return nil
		},
	}
}

func (a *app) newBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List known notebooks, current first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.registry().Entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Hint("No notebooks yet. Run 'notebook create' to start one."))
				return nil
			}

			out := cmd.OutOrStdout()
			styled := ui.StdoutIsTerminal()
			for i, dir := range entries {
				if i == 0 && styled {
					dir = ui.Bold.Render(dir)
				}
				fmt.Fprintln(out, dir)
			}
			return nil
		},
	}
}

func (a *app) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "use <directory>",
		Aliases: []string{"set"},
		Short:   "Make a notebook the current one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(config.ExpandHome(args[0]))
			if err != nil {
				return err
			}
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("%w: %s", book.ErrDirectoryNotFound, dir)
			}
			if err := a.registry().Select(dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Using %s", ui.FilePath(dir)))
			return nil
		},
	}
}

func (a *app) newCreateCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "create [location]",
		Short: "Create a new notebook and make it current",
		Long: `Creates a notebook directory and selects it. With --title and no
location, the directory is named after the title inside your notes directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(config.ExpandHome(a.createLocation(firstArg(args), title)))
			if err != nil {
				return err
			}

			b, err := book.Create(dir, title, a.tools())
			if err != nil {
				return err
			}
			if err := a.registry().Select(b.Dir()); err != nil {
				return err
			}
			a.logger.Debug("created notebook", slog.String("dir", b.Dir()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Created %s", ui.FilePath(b.Dir())))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Title written to the .notebook manifest")
	return cmd
}

func (a *app) createLocation(location, title string) string {
	if location = strings.TrimSpace(location); location != "" {
		return location
	}
	base := a.cfg.NotesDir
	if base == "" {
		base = defaultLocation
	}
	if name := slug.Make(title); name != "" {
		return filepath.Join(config.ExpandHome(base), name)
	}
	return base
}

func (a *app) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [directory]",
		Short: "Open a directory in your editor, or a file in your pager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.New(firstArg(args), a.tools()).Show(cmd.Context(), a.cfg.NotesDir)
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [directory]",
		Short: "Show a directory in your file manager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return book.New(firstArg(args), a.tools()).Open(cmd.Context(), a.cfg.NotesDir)
		},
	}
}

func (a *app) newBindCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "bind [directory]",
		Short: "Bind a notebook into one document",
		Long: `Converts every page of a notebook, in path order, into a single
document next to the notebook directory. Defaults to the current notebook.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.bookAt(firstArg(args))
			if err != nil {
				return err
			}
			out, err := b.Bind(cmd.Context(), a.exportFormat(to))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Bound %s", ui.FilePath(out)))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Target extension (default from config)")
	return cmd
}

func (a *app) newExportCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert a single note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := note.New(config.ExpandHome(args[0]), a.tools())
			out, err := n.Export(cmd.Context(), a.exportFormat(to))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Exported %s", ui.FilePath(out)))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Target extension (default from config)")
	return cmd
}

func (a *app) exportFormat(flag string) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	return a.cfg.ExportFormat
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
