package note

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestHeadings(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Projects/Alpha", want: "# Projects\n\n## Alpha"},
		{title: "Ideas", want: "# Ideas"},
		{title: " A / B / C ", want: "# A\n\n## B\n\n### C"},
		{title: "A//B", want: "# A\n\n## B"},
		{title: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Headings(tt.title); got != tt.want {
				t.Fatalf("Headings(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestPrefillRender(t *testing.T) {
	t.Run("title and body", func(t *testing.T) {
		got, err := Prefill{Title: "Projects/Alpha", Body: "first line\nsecond line\n"}.Render()
		if err != nil {
			t.Fatal(err)
		}
		want := "# Projects\n\n## Alpha\n\nfirst line\nsecond line"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("body only", func(t *testing.T) {
		got, err := Prefill{Body: "piped"}.Render()
		if err != nil {
			t.Fatal(err)
		}
		if got != "piped" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := Prefill{Body: "\n\n"}.Render()
		if err != nil {
			t.Fatal(err)
		}
		if got != "" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestPrefillFrontmatter(t *testing.T) {
	got, err := Prefill{Title: "Projects/Alpha", Date: "2024-05-22", Frontmatter: true}.Render()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(got, "---\n") {
		t.Fatalf("expected frontmatter delimiter, got %q", got)
	}
	parts := strings.SplitN(strings.TrimPrefix(got, "---\n"), "---", 2)
	if len(parts) != 2 {
		t.Fatalf("expected closing delimiter, got %q", got)
	}

	var fm map[string]string
	if err := yaml.Unmarshal([]byte(parts[0]), &fm); err != nil {
		t.Fatalf("frontmatter is not YAML: %v", err)
	}
	if fm["date"] != "2024-05-22" || fm["title"] != "Projects/Alpha" {
		t.Fatalf("unexpected frontmatter %v", fm)
	}
	if !strings.HasSuffix(got, "# Projects\n\n## Alpha") {
		t.Fatalf("expected headings after frontmatter, got %q", got)
	}
}

func TestPrefillFrontmatterSkippedWhenEmpty(t *testing.T) {
	got, err := Prefill{Frontmatter: true, Body: "x"}.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Fatalf("got %q", got)
	}
}
