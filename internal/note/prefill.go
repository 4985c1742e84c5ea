package note

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// headingSeparator splits a title into nested headings.
const headingSeparator = "/"

// Headings turns "Projects/Alpha" into "# Projects\n\n## Alpha". Empty
// segments are skipped.
func Headings(title string) string {
	var headings []string
	for _, segment := range strings.Split(title, headingSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		level := len(headings) + 1
		headings = append(headings, strings.Repeat("#", level)+" "+segment)
	}
	return strings.Join(headings, "\n\n")
}

// Prefill is the template a new note starts from.
type Prefill struct {
	// Title becomes nested headings.
	Title string
	// Body is free text, usually piped in on stdin.
	Body string
	// Frontmatter adds a YAML header with Date and Title.
	Frontmatter bool
	// Date is the resolved date string, used in the frontmatter.
	Date string
}

type frontmatter struct {
	Date  string `yaml:"date,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// Render joins frontmatter, headings and body with blank lines.
func (p Prefill) Render() (string, error) {
	var parts []string

	if p.Frontmatter {
		fm, err := renderFrontmatter(p.Date, strings.TrimSpace(p.Title))
		if err != nil {
			return "", err
		}
		if fm != "" {
			parts = append(parts, fm)
		}
	}
	if h := Headings(p.Title); h != "" {
		parts = append(parts, h)
	}
	if body := strings.TrimRight(p.Body, "\r\n"); strings.TrimSpace(body) != "" {
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n\n"), nil
}

func renderFrontmatter(date, title string) (string, error) {
	if date == "" && title == "" {
		return "", nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(frontmatter{Date: date, Title: title}); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	return "---\n" + buf.String() + "---", nil
}
