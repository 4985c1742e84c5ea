// Package note models a single markdown note and the things that can be
// done to it: open it in an editor, convert it, edit it with raw arguments.
package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aidanlsb/notebook/internal/editor"
	"github.com/aidanlsb/notebook/internal/program"
)

var (
	// ErrNoFilePath is returned by operations that need a file on disk.
	ErrNoFilePath = errors.New("note has no file path")

	// ErrExportFailed matches every *ExportError.
	ErrExportFailed = errors.New("export failed")
)

// Tools are the external programs notes and books hand work to.
type Tools struct {
	Runner program.Runner

	// Editor is the preferred editor; empty falls back to editor.Fallback.
	Editor string
	// Pager shows single files.
	Pager string
	// Reveal opens a directory in the file manager.
	Reveal string
	// Converter turns markdown into other formats.
	Converter string

	Logger *slog.Logger
}

func (t Tools) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

func (t Tools) run(ctx context.Context, command string, args ...string) error {
	if t.Runner == nil {
		return fmt.Errorf("no program runner configured")
	}
	name, argv := editor.Command(command, args...)
	return t.Runner.Run(ctx, name, argv...)
}

// Note is a markdown file, identified by an optional path. A note without a
// path opens the editor on a scratch buffer.
type Note struct {
	path  string
	tools Tools
}

// New wraps path. An empty path means none could be resolved.
func New(path string, tools Tools) *Note {
	return &Note{path: path, tools: tools}
}

// Path returns the file path, empty if there is none.
func (n *Note) Path() string {
	return n.path
}

// HasPath reports whether the note points at a file.
func (n *Note) HasPath() bool {
	return n.path != ""
}

// OpenOptions tune Note.Open.
type OpenOptions struct {
	// Editor overrides the preferred editor.
	Editor string
	// Prefill is appended to the buffer when the editor supports it.
	Prefill string
}

// Open launches the editor on the note and waits for it to exit.
func (n *Note) Open(ctx context.Context, opts OpenOptions) error {
	ed := firstNonEmpty(opts.Editor, n.tools.Editor, editor.Fallback)

	params, err := editor.BuildParams(ed, opts.Prefill)
	if errors.Is(err, editor.ErrUnsupportedEditor) {
		n.tools.logger().Debug("editor takes no parameters", slog.String("editor", ed))
		params = nil
	} else if err != nil {
		return err
	}

	args := params
	if n.HasPath() {
		args = append(args, n.path)
	}

	n.tools.logger().Debug("opening note", slog.String("editor", ed), slog.String("path", n.path))
	if err := n.tools.run(ctx, ed, args...); err != nil {
		return fmt.Errorf("open %s: %w", displayPath(n.path), err)
	}
	return nil
}

// Edit runs editor with rawArgs against the note, without parameter
// derivation.
func (n *Note) Edit(ctx context.Context, ed string, rawArgs []string) error {
	ed = firstNonEmpty(ed, n.tools.Editor, editor.Fallback)
	args := append([]string{}, rawArgs...)
	if n.HasPath() {
		args = append(args, n.path)
	}
	return n.tools.run(ctx, ed, args...)
}

// Export converts the note to <path><ext> and returns the output path.
func (n *Note) Export(ctx context.Context, ext string) (string, error) {
	if !n.HasPath() {
		return "", ErrNoFilePath
	}
	ext = NormalizeExt(ext)
	if ext == "" {
		return "", fmt.Errorf("export %s: no target format", n.path)
	}
	output := n.path + ext
	if err := convert(ctx, n.tools, []string{n.path}, output); err != nil {
		return "", err
	}
	return output, nil
}

// ExportError reports a converter run that did not succeed.
type ExportError struct {
	Output string
	Code   int
	Err    error
}

func (e *ExportError) Error() string {
	if e.Code >= 0 {
		return fmt.Sprintf("export to %s failed: converter exited with status %d", e.Output, e.Code)
	}
	return fmt.Sprintf("export to %s failed: %v", e.Output, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrExportFailed) hold.
func (e *ExportError) Is(target error) bool {
	return target == ErrExportFailed
}

// Convert runs the converter over sources, writing output. Books use it to
// bind several pages into one document.
func Convert(ctx context.Context, tools Tools, sources []string, output string) error {
	return convert(ctx, tools, sources, output)
}

func convert(ctx context.Context, tools Tools, sources []string, output string) error {
	converter := firstNonEmpty(tools.Converter, "pandoc")
	args := append(append([]string{}, sources...), "-o", output)

	tools.logger().Debug("converting", slog.String("converter", converter), slog.Any("args", args))
	if err := tools.run(ctx, converter, args...); err != nil {
		return &ExportError{Output: output, Code: program.ExitCode(err), Err: err}
	}
	return nil
}

// NormalizeExt ensures ext starts with a dot.
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func displayPath(p string) string {
	if p == "" {
		return "scratch buffer"
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
