package note

import (
	"errors"
	"time"

	"github.com/aidanlsb/notebook/internal/dates"
	"github.com/aidanlsb/notebook/internal/paths"
)

// ErrNothingToResolve means neither a date nor a name was given.
var ErrNothingToResolve = errors.New("either a date or a name must be provided")

// DirFunc picks the directory for a note; dated reports whether the note
// carries a date prefix. An empty result means no directory is configured.
type DirFunc func(dated bool) string

// Resolver turns a (date, name) pair into a note path.
type Resolver struct {
	dates *dates.Resolver
	dirs  DirFunc
}

// NewResolver builds a Resolver.
func NewResolver(d *dates.Resolver, dirs DirFunc) *Resolver {
	return &Resolver{dates: d, dirs: dirs}
}

// DateString formats spec relative to now; None yields "".
func (r *Resolver) DateString(spec dates.Spec, now time.Time) (string, error) {
	return r.dates.Format(spec, now)
}

// ResolvePath returns "<dir>/<date>_<name>.md". With no directory
// configured it returns "" and no error: the note has no path.
func (r *Resolver) ResolvePath(spec dates.Spec, name string, now time.Time) (string, error) {
	date, err := r.DateString(spec, now)
	if err != nil {
		return "", err
	}
	return r.compose(date, name)
}

func (r *Resolver) compose(date, name string) (string, error) {
	if date == "" && name == "" {
		return "", ErrNothingToResolve
	}

	dir := ""
	if r.dirs != nil {
		dir = r.dirs(date != "")
	}
	if dir == "" {
		return "", nil
	}
	return paths.ComposePath(dir, []string{date, name}, paths.DefaultExt)
}
