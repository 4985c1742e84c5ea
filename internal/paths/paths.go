// Package paths composes note file paths from ordered, optional name parts.
//
// A dated note named "todo" becomes "<dir>/2024-05-22_todo.md"; either part
// may be missing, but not both.
package paths

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultExt is the extension used when none is given.
const DefaultExt = "md"

// Separator joins filename components.
const Separator = "_"

// ErrEmptyComponents is returned when no component survives filtering.
var ErrEmptyComponents = errors.New("no filename components: provide a date or a name")

// ComposePath drops empty components, joins the rest with "_", appends
// ".ext" and joins the result onto dir.
func ComposePath(dir string, components []string, ext string) (string, error) {
	name, err := ComposeFilename(components, ext)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// ComposeFilename is ComposePath without the directory.
func ComposeFilename(components []string, ext string) (string, error) {
	kept := make([]string, 0, len(components))
	for _, c := range components {
		if strings.TrimSpace(c) == "" {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return "", ErrEmptyComponents
	}
	return strings.Join(kept, Separator) + "." + normalizeExt(ext), nil
}

func normalizeExt(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return DefaultExt
	}
	return ext
}
