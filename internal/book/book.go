// Package book models a notebook: a directory of markdown pages with an
// optional .notebook manifest naming it.
package book

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/notebook/internal/atomicfile"
	"github.com/aidanlsb/notebook/internal/editor"
	"github.com/aidanlsb/notebook/internal/note"
)

const (
	// ManifestFile holds the book's display title.
	ManifestFile = ".notebook"

	// DefaultTitle is shown for books without a manifest.
	DefaultTitle = "Notebook"

	pageExt = ".md"
)

var (
	// ErrDirectoryNotFound is returned when the book directory is missing.
	ErrDirectoryNotFound = errors.New("notebook directory not found")

	// ErrEnvironmentNotConfigured is returned when no notes directory is set.
	ErrEnvironmentNotConfigured = errors.New("notes directory is not configured (set $NOTES)")

	// ErrNoPages is returned when binding a book with nothing in it.
	ErrNoPages = errors.New("notebook has no pages")
)

// Book is a directory of notes.
type Book struct {
	dir   string
	tools note.Tools
}

// New wraps dir. The directory is not touched.
func New(dir string, tools note.Tools) *Book {
	return &Book{dir: dir, tools: tools}
}

// Create makes dir and, when title is non-empty, writes its manifest.
func Create(dir, title string, tools note.Tools) (*Book, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("create notebook: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create notebook %s: %w", dir, err)
	}

	b := New(dir, tools)
	if title = strings.TrimSpace(title); title != "" {
		if err := atomicfile.WriteFile(b.manifestPath(), []byte(title+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
	}
	return b, nil
}

// Dir returns the book's directory.
func (b *Book) Dir() string {
	return b.dir
}

func (b *Book) String() string {
	return fmt.Sprintf("Book(%q)", b.dir)
}

// Note returns the note at dir/title. No file is created.
func (b *Book) Note(title string) *note.Note {
	return note.New(filepath.Join(b.dir, title), b.tools)
}

func (b *Book) manifestPath() string {
	return filepath.Join(b.dir, ManifestFile)
}

// Manifest returns the manifest text with surrounding newlines trimmed.
// ok is false when the book has no manifest.
func (b *Book) Manifest() (text string, ok bool, err error) {
	data, err := os.ReadFile(b.manifestPath())
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read manifest: %w", err)
	}
	return strings.Trim(string(data), "\r\n"), true, nil
}

// Title returns the manifest text, or DefaultTitle.
func (b *Book) Title() (string, error) {
	text, ok, err := b.Manifest()
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(text) == "" {
		return DefaultTitle, nil
	}
	return text, nil
}

// within resolves the book directory against the notes base directory.
func (b *Book) within(baseDir string) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return "", ErrEnvironmentNotConfigured
	}
	if filepath.IsAbs(b.dir) {
		return b.dir, nil
	}
	return filepath.Join(baseDir, b.dir), nil
}

// List returns the names (without extension) of the markdown files directly
// inside the book, sorted.
func (b *Book) List(baseDir string) ([]string, error) {
	dir, err := b.within(baseDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), pageExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), pageExt))
	}
	return names, nil
}

// Open reveals the book in the file manager.
func (b *Book) Open(ctx context.Context, baseDir string) error {
	dir, err := b.within(baseDir)
	if err != nil {
		return err
	}
	reveal := strings.TrimSpace(b.tools.Reveal)
	if reveal == "" {
		return fmt.Errorf("no file manager configured")
	}
	return b.run(ctx, reveal, dir)
}

// Show opens the target in the editor when it is a directory and in the
// pager otherwise.
func (b *Book) Show(ctx context.Context, baseDir string) error {
	target, err := b.within(baseDir)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		ed := b.tools.Editor
		if strings.TrimSpace(ed) == "" {
			ed = editor.Fallback
		}
		return b.run(ctx, ed, target)
	}

	pager := b.tools.Pager
	if strings.TrimSpace(pager) == "" {
		pager = "less"
	}
	return b.run(ctx, pager, target)
}

// Bind converts every page, in path order, into one document next to the
// book directory and returns its path.
func (b *Book) Bind(ctx context.Context, ext string) (string, error) {
	pages, err := b.Pages()
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoPages, b.dir)
	}

	ext = note.NormalizeExt(ext)
	if ext == "" {
		return "", fmt.Errorf("bind %s: no target format", b.dir)
	}
	output := filepath.Clean(b.dir) + ext
	if err := note.Convert(ctx, b.tools, pages, output); err != nil {
		return "", err
	}
	return output, nil
}

func (b *Book) run(ctx context.Context, command, target string) error {
	if b.tools.Runner == nil {
		return fmt.Errorf("no program runner configured")
	}
	name, args := editor.Command(command, target)
	return b.tools.Runner.Run(ctx, name, args...)
}
