package dates

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestResolveOffsets(t *testing.T) {
	tests := []struct {
		spec Spec
		want int
	}{
		{Yesterday, -1},
		{Today, 0},
		{Tomorrow, 1},
		{Day, 0},
		{Week, 0},
		{Now, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.spec), func(t *testing.T) {
			got, _, err := Resolve(tt.spec)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Fatalf("Resolve(%q) offset = %d, want %d", tt.spec, got, tt.want)
			}
		})
	}
}

func TestEveryKeywordHasPattern(t *testing.T) {
	for _, s := range All() {
		if _, _, err := Resolve(s); err != nil {
			t.Errorf("Resolve(%q) error: %v", s, err)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	_, _, err := Resolve(Spec("fortnight"))
	if !errors.Is(err, ErrInvalidDateSpec) {
		t.Fatalf("expected ErrInvalidDateSpec, got %v", err)
	}
}

func TestPatternsDropPrecision(t *testing.T) {
	now := time.Date(2024, 5, 22, 14, 30, 15, 0, time.UTC)

	_, day, _ := Resolve(Day)
	_, month, _ := Resolve(Month)
	_, year, _ := Resolve(Year)
	_, week, _ := Resolve(Week)

	dayStr := Format(day, now)
	monthStr := Format(month, now)
	yearStr := Format(year, now)

	if !strings.HasPrefix(dayStr, monthStr) || !strings.HasPrefix(monthStr, yearStr) {
		t.Fatalf("expected year ⊂ month ⊂ day, got %q %q %q", yearStr, monthStr, dayStr)
	}
	if len(yearStr) >= len(monthStr) || len(monthStr) >= len(dayStr) {
		t.Fatalf("expected strictly shorter strings, got %q %q %q", yearStr, monthStr, dayStr)
	}

	seen := map[string]bool{}
	for _, p := range []string{week, month, year} {
		if seen[p] {
			t.Fatalf("pattern %q shared between week/month/year", p)
		}
		seen[p] = true
	}
}

func TestFormatTable(t *testing.T) {
	now := time.Date(2024, 5, 22, 14, 30, 15, 0, time.UTC)
	tests := []struct {
		spec Spec
		want string
	}{
		{Now, "2024-05-22T14:30:15"},
		{Second, "2024-05-22T14:30:15"},
		{Minute, "2024-05-22T14:30"},
		{Hour, "2024-05-22T14"},
		{Day, "2024-05-22"},
		{Today, "2024-05-22"},
		{Yesterday, "2024-05-21"},
		{Tomorrow, "2024-05-23"},
		{Week, "2024-W21"},
		{Weekday, "2024-W21-3"},
		{Month, "2024-05"},
		{Year, "2024"},
	}

	r := NewResolver(Features{SubDay: true, Weekdays: true, Relative: true})
	for _, tt := range tests {
		t.Run(string(tt.spec), func(t *testing.T) {
			got, err := r.Format(tt.spec, now)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Fatalf("Format(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestWeekUsesISOYear(t *testing.T) {
	r := NewResolver(Features{Weekdays: true})

	got, err := r.Format(Week, time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-W01" {
		t.Fatalf("got %q, want 2025-W01", got)
	}

	got, err = r.Format(Weekday, time.Date(2021, 1, 3, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2020-W53-7" {
		t.Fatalf("got %q, want 2020-W53-7", got)
	}
}

func TestFormatNone(t *testing.T) {
	r := NewResolver(DefaultFeatures())
	got, err := r.Format(None, time.Now())
	if err != nil || got != "" {
		t.Fatalf("Format(None) = %q, %v; want empty, nil", got, err)
	}
}

func TestParseSpec(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		s, err := ParseSpec("  Yesterday ")
		if err != nil || s != Yesterday {
			t.Fatalf("ParseSpec = %q, %v", s, err)
		}
	})

	t.Run("empty is none", func(t *testing.T) {
		s, err := ParseSpec("")
		if err != nil || s != None {
			t.Fatalf("ParseSpec = %q, %v", s, err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseSpec("not-a-date"); !errors.Is(err, ErrInvalidDateSpec) {
			t.Fatalf("expected ErrInvalidDateSpec, got %v", err)
		}
	})
}
