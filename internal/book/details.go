package book

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aidanlsb/notebook/internal/ui"
)

// CreationTime returns when the book directory was created. Platforms that
// do not record birth times report the modification time.
func (b *Book) CreationTime() (time.Time, error) {
	info, err := b.stat()
	if err != nil {
		return time.Time{}, err
	}
	return birthTime(b.dir, info)
}

func (b *Book) stat() (os.FileInfo, error) {
	info, err := os.Stat(b.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrDirectoryNotFound, err)
		}
		return nil, fmt.Errorf("stat %s: %w", b.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, b.dir)
	}
	return info, nil
}

// page is a markdown file with its modification time.
type page struct {
	path    string
	modTime time.Time
}

func (b *Book) walk() ([]page, error) {
	if _, err := b.stat(); err != nil {
		return nil, err
	}

	var pages []page
	err := filepath.WalkDir(b.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != b.dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), pageExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		pages = append(pages, page{path: path, modTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", b.dir, err)
	}
	return pages, nil
}

// Pages returns every markdown file under the book, recursively, sorted.
// Hidden directories are skipped.
func (b *Book) Pages() ([]string, error) {
	pages, err := b.walk()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.path
	}
	sort.Strings(out)
	return out, nil
}

// PageCount returns len(Pages()).
func (b *Book) PageCount() (int, error) {
	pages, err := b.walk()
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

// LatestPage returns the most recently modified page, empty if there are
// none. Equal times resolve to the lexically greatest path.
func (b *Book) LatestPage() (string, error) {
	pages, err := b.walk()
	if err != nil {
		return "", err
	}
	return latestOf(pages), nil
}

func latestOf(pages []page) string {
	var latest page
	for _, p := range pages {
		if latest.path == "" || p.modTime.After(latest.modTime) ||
			(p.modTime.Equal(latest.modTime) && p.path > latest.path) {
			latest = p
		}
	}
	return latest.path
}

// MonthsBetween counts calendar months from then to now, ignoring the day.
func MonthsBetween(then, now time.Time) int {
	return (now.Year()-then.Year())*12 + int(now.Month()) - int(then.Month())
}

// Details renders a summary of the book as of now.
func (b *Book) Details(now time.Time) (string, error) {
	created, err := b.CreationTime()
	if err != nil {
		return "", err
	}
	title, err := b.Title()
	if err != nil {
		return "", err
	}
	pages, err := b.walk()
	if err != nil {
		return "", err
	}
	latest := latestOf(pages)
	if latest == "" {
		latest = "(none)"
	}

	var s strings.Builder
	fmt.Fprintf(&s, "%s (%s)\n", ui.Header(title), b.dir)
	fmt.Fprintf(&s, "Created in %d (%d months ago), %s\n\n", created.Year(), MonthsBetween(created, now), ui.Count(len(pages), "page", "pages"))
	s.WriteString("Recently edited:\n")
	s.WriteString(latest)
	return s.String(), nil
}
