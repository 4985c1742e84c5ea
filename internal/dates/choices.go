package dates

import (
	"fmt"
	"strings"
	"time"
)

// Features switches groups of keywords on or off. They are fixed for the
// lifetime of a process.
type Features struct {
	// SubDay enables second, minute and hour.
	SubDay bool `toml:"subday"`
	// Weekdays enables week and weekday.
	Weekdays bool `toml:"weekdays"`
	// Relative enables now, yesterday, today and tomorrow.
	Relative bool `toml:"relative"`
}

// DefaultFeatures has relative terms on and the finer/weekly groups off.
func DefaultFeatures() Features {
	return Features{Relative: true}
}

// Enabled reports whether s is allowed under f. None is always allowed.
func (f Features) Enabled(s Spec) bool {
	switch s {
	case None:
		return true
	case Second, Minute, Hour:
		return f.SubDay
	case Week, Weekday:
		return f.Weekdays
	case Now, Yesterday, Today, Tomorrow:
		return f.Relative
	case Day, Month, Year:
		return true
	default:
		return false
	}
}

// AvailableChoices returns the enabled keywords in declaration order.
func AvailableChoices(f Features) []Spec {
	out := make([]Spec, 0, len(domain))
	for _, s := range domain {
		if f.Enabled(s) {
			out = append(out, s)
		}
	}
	return out
}

// Resolver resolves keywords against a fixed feature set.
type Resolver struct {
	features Features
	choices  []Spec
}

// NewResolver computes the available choices once.
func NewResolver(f Features) *Resolver {
	return &Resolver{features: f, choices: AvailableChoices(f)}
}

// Choices returns the legal input set.
func (r *Resolver) Choices() []Spec {
	out := make([]Spec, len(r.choices))
	copy(out, r.choices)
	return out
}

// ChoiceNames returns the legal input set as strings, for flag help.
func (r *Resolver) ChoiceNames() []string {
	names := make([]string, len(r.choices))
	for i, s := range r.choices {
		names[i] = string(s)
	}
	return names
}

// Parse parses value and rejects keywords outside the enabled set.
func (r *Resolver) Parse(value string) (Spec, error) {
	s, err := ParseSpec(value)
	if err != nil {
		return None, fmt.Errorf("%w (choose from %s)", err, strings.Join(r.ChoiceNames(), ", "))
	}
	if !r.features.Enabled(s) {
		return None, fmt.Errorf("%w: %q is disabled (choose from %s)", ErrInvalidDateSpec, value, strings.Join(r.ChoiceNames(), ", "))
	}
	return s, nil
}

// Resolve is the package-level Resolve restricted to the enabled set.
func (r *Resolver) Resolve(s Spec) (int, string, error) {
	if s == None {
		return 0, "", fmt.Errorf("%w: no date requested", ErrInvalidDateSpec)
	}
	if !r.features.Enabled(s) {
		return 0, "", fmt.Errorf("%w: %q is disabled", ErrInvalidDateSpec, string(s))
	}
	return Resolve(s)
}

// Format renders the date string for s relative to now. None yields "".
func (r *Resolver) Format(s Spec, now time.Time) (string, error) {
	if s == None {
		return "", nil
	}
	offset, pattern, err := r.Resolve(s)
	if err != nil {
		return "", err
	}
	return Format(pattern, now.AddDate(0, 0, offset)), nil
}
