// Package registry persists the list of known notebook directories.
//
// The file holds one directory per line; the first line is the currently
// selected book. Selecting a book moves it to the front.
package registry

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aidanlsb/notebook/internal/atomicfile"
	"github.com/aidanlsb/notebook/internal/filelock"
)

// ErrNoSelection is returned when the registry has no entries.
var ErrNoSelection = errors.New("no notebook selected")

// Registry is a handle on a registry file.
type Registry struct {
	path string
}

// Open returns a handle for path. The file need not exist yet.
func Open(path string) *Registry {
	return &Registry{path: path}
}

// Path returns the registry file path.
func (r *Registry) Path() string {
	return r.path
}

func (r *Registry) lockPath() string {
	return r.path + ".lock"
}

// Entries returns the registered directories, most recent first. A missing
// file yields no entries.
func (r *Registry) Entries() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", r.path, err)
	}
	return parse(data), nil
}

// Current returns the selected directory.
func (r *Registry) Current() (string, error) {
	entries, err := r.Entries()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNoSelection
	}
	return entries[0], nil
}

// Select moves dir to the front of the registry.
func (r *Registry) Select(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fmt.Errorf("select: empty directory")
	}
	return r.update(func(entries []string) []string {
		return MoveToFront(entries, dir)
	})
}

// Remove drops dir from the registry. Removing an unknown entry is a no-op.
func (r *Registry) Remove(dir string) error {
	return r.update(func(entries []string) []string {
		return without(entries, strings.TrimSpace(dir))
	})
}

func (r *Registry) update(fn func([]string) []string) error {
	lock, err := filelock.Acquire(r.lockPath())
	if err != nil {
		return err
	}
	defer lock.Release()

	entries, err := r.Entries()
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(r.path, format(fn(entries)), 0)
}

// MoveToFront removes every occurrence of dir and prepends it.
func MoveToFront(entries []string, dir string) []string {
	out := make([]string, 0, len(entries)+1)
	out = append(out, dir)
	return append(out, without(entries, dir)...)
}

func without(entries []string, dir string) []string {
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e == dir {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

func parse(data []byte) []string {
	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

func format(entries []string) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
