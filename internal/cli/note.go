package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notebook/internal/note"
	"github.com/aidanlsb/notebook/internal/ui"
)

type noteOptions struct {
	date        dateFlag
	name        string
	input       string
	editor      string
	frontmatter bool
}

func (a *app) newNoteCmd(use string) *cobra.Command {
	var opts noteOptions

	cmd := &cobra.Command{
		Use:   use + " [TITLE...]",
		Short: "Take a note in markdown",
		Long: `Opens your editor on a note. The file path is built from the date
and name flags; without either the editor opens a scratch buffer.

The title becomes markdown headings, one level per "/" separated segment.
Piped standard input (or -i FILE) is added as the body.

Examples:
  note -d today standup
  note -n ideas Projects/Alpha
  echo "- call Sam" | note -d today -n todo`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNote(cmd, args, &opts)
		},
	}

	a.addDateFlag(cmd, &opts.date)
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name appended to the file name")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read the body from FILE (\"-\" for stdin)")
	cmd.Flags().StringVar(&opts.editor, "editor", "", "Editor to use instead of $EDITOR")
	cmd.Flags().BoolVar(&opts.frontmatter, "frontmatter", false, "Start the note with a YAML header")
	return cmd
}

func (a *app) runNote(cmd *cobra.Command, args []string, opts *noteOptions) error {
	path, date, err := a.resolveNotePath(&opts.date, opts.name)
	if err != nil {
		return err
	}

	body, err := a.readBody(opts.input)
	if err != nil {
		return err
	}

	prefill, err := note.Prefill{
		Title:       strings.Join(args, " "),
		Body:        body,
		Date:        date,
		Frontmatter: opts.frontmatter || a.cfg.Frontmatter,
	}.Render()
	if err != nil {
		return err
	}

	n := note.New(path, a.tools())
	return n.Open(cmd.Context(), note.OpenOptions{Editor: opts.editor, Prefill: prefill})
}

// resolveNotePath returns the note path and its date string. A request
// with neither a date nor a name resolves to no path.
func (a *app) resolveNotePath(f *dateFlag, name string) (path, date string, err error) {
	spec, err := a.resolveDate(f)
	if err != nil {
		return "", "", err
	}

	now := a.env.Now()
	r := a.noteResolver()
	date, err = r.DateString(spec, now)
	if err != nil {
		return "", "", err
	}

	path, err = r.ResolvePath(spec, strings.TrimSpace(name), now)
	if errors.Is(err, note.ErrNothingToResolve) {
		return "", date, nil
	}
	if err != nil {
		return "", "", err
	}
	a.logger.Debug("resolved note path", slog.String("path", path), slog.String("date", date))
	return path, date, nil
}

// readBody reads -i FILE, or standard input when it is piped.
func (a *app) readBody(input string) (string, error) {
	switch {
	case input == "-":
		return readAll(a.env.Stdin, "stdin")
	case input != "":
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	case !a.env.StdinIsTerminal():
		return readAll(a.env.Stdin, "stdin")
	}
	return "", nil
}

func readAll(r io.Reader, name string) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

func (a *app) newPathCmd() *cobra.Command {
	var (
		date     dateFlag
		name     string
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the file path a note would use",
		Long: `Prints the path "note" would open for the given date and name.

Useful for shell integration:
  cat "$(notebook path -d today)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := a.resolveNotePath(&date, name)
			if err != nil {
				return err
			}
			if path == "" {
				if date.spec == "" && strings.TrimSpace(name) == "" {
					return note.ErrNothingToResolve
				}
				return fmt.Errorf("no notes directory configured (set $NOTES)")
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			if copyPath {
				if err := a.env.Clipboard(path); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("Copied to clipboard"))
			}
			return nil
		},
	}

	a.addDateFlag(cmd, &date)
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name appended to the file name")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Also copy the path to the clipboard")
	return cmd
}
