// Package dates maps symbolic date keywords ("day", "week", "yesterday", ...)
// to a calendar offset and a strftime pattern used to name dated notes.
//
// The package never reads the clock: callers pass "now" in, which keeps
// resolution pure and testable.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrInvalidDateSpec is returned for keywords outside the enabled set.
var ErrInvalidDateSpec = errors.New("invalid date spec")

// Spec is a symbolic date keyword.
type Spec string

// None means no date dimension was requested.
const None Spec = ""

const (
	Now       Spec = "now"
	Second    Spec = "second"
	Minute    Spec = "minute"
	Hour      Spec = "hour"
	Day       Spec = "day"
	Weekday   Spec = "weekday"
	Week      Spec = "week"
	Month     Spec = "month"
	Year      Spec = "year"
	Yesterday Spec = "yesterday"
	Today     Spec = "today"
	Tomorrow  Spec = "tomorrow"
)

// Patterns, coarsest last.
const (
	PatternSecond  = "%Y-%m-%dT%H:%M:%S"
	PatternMinute  = "%Y-%m-%dT%H:%M"
	PatternHour    = "%Y-%m-%dT%H"
	PatternDay     = "%Y-%m-%d"
	PatternWeekday = "%G-W%V-%u"
	PatternWeek    = "%G-W%V"
	PatternMonth   = "%Y-%m"
	PatternYear    = "%Y"
)

// domain lists every keyword in declaration order.
var domain = []Spec{
	Now, Second, Minute, Hour, Day, Weekday, Week, Month, Year,
	Yesterday, Today, Tomorrow,
}

var patterns = map[Spec]string{
	Now:       PatternSecond,
	Second:    PatternSecond,
	Minute:    PatternMinute,
	Hour:      PatternHour,
	Day:       PatternDay,
	Yesterday: PatternDay,
	Today:     PatternDay,
	Tomorrow:  PatternDay,
	Week:      PatternWeek,
	Weekday:   PatternWeekday,
	Month:     PatternMonth,
	Year:      PatternYear,
}

// All returns the full keyword domain, ignoring feature switches.
func All() []Spec {
	out := make([]Spec, len(domain))
	copy(out, domain)
	return out
}

func (s Spec) String() string {
	return string(s)
}

// ParseSpec parses a keyword case-insensitively. An empty string yields None.
func ParseSpec(value string) (Spec, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return None, nil
	}
	s := Spec(v)
	if _, ok := patterns[s]; !ok {
		return None, fmt.Errorf("%w: %q", ErrInvalidDateSpec, value)
	}
	return s, nil
}

// OffsetDays is -1 for yesterday, +1 for tomorrow, 0 otherwise.
func (s Spec) OffsetDays() int {
	switch s {
	case Yesterday:
		return -1
	case Tomorrow:
		return 1
	default:
		return 0
	}
}

// Pattern returns the strftime pattern for s.
func (s Spec) Pattern() (string, bool) {
	p, ok := patterns[s]
	return p, ok
}

// Resolve returns the day offset and pattern for any keyword in the domain.
func Resolve(s Spec) (int, string, error) {
	p, ok := s.Pattern()
	if !ok {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidDateSpec, string(s))
	}
	return s.OffsetDays(), p, nil
}

// Format renders t with a strftime pattern.
func Format(pattern string, t time.Time) string {
	return strftime.Format(pattern, t)
}
