package ui

import "fmt"

const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
)

// Success prefixes msg with a check mark.
func Success(msg string) string {
	return SymbolSuccess + " " + msg
}

func Successf(format string, args ...any) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error prefixes msg with a cross.
func Error(msg string) string {
	return SymbolError + " " + msg
}

// Header renders a notebook title.
func Header(msg string) string {
	return Bold.Render(msg)
}

// FilePath renders a path in the accent colour.
func FilePath(path string) string {
	return Accent.Render(path)
}

func Hint(msg string) string {
	return Muted.Render(msg)
}

// Count formats n with the matching noun, e.g. "1 page" or "3 pages".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
