// Package editor decides how to hand a prefill payload to a text editor,
// and how to turn a configured editor string into an executable command.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Fallback is used when no editor is configured.
const Fallback = "vi"

// ErrUnsupportedEditor means the editor has no known scripting syntax.
// Callers should launch it without parameters.
var ErrUnsupportedEditor = errors.New("unsupported editor")

// Strategy is the closed set of editor scripting dialects.
type Strategy int

const (
	// Unsupported editors get no parameters.
	Unsupported Strategy = iota
	// Vim covers vi, vim and nvim.
	Vim
)

var strategies = map[string]Strategy{
	"vi":   Vim,
	"vim":  Vim,
	"nvim": Vim,
}

func (s Strategy) String() string {
	switch s {
	case Vim:
		return "vim"
	default:
		return "unsupported"
	}
}

// Lookup selects the strategy by exact match on the editor's command name.
func Lookup(editor string) Strategy {
	return strategies[CommandName(editor)]
}

// Params builds command-line arguments that prepare a markdown buffer and
// append prefill at its end.
func (s Strategy) Params(prefill string) ([]string, error) {
	switch s {
	case Vim:
		cmd := `:set filetype=markdown|set path+=**|:exe "$normal A` + vimString(prefill) + `"`
		return []string{"-c", cmd}, nil
	default:
		return nil, ErrUnsupportedEditor
	}
}

// BuildParams looks up the strategy for editor and builds its parameters.
func BuildParams(editor, prefill string) ([]string, error) {
	s := Lookup(editor)
	params, err := s.Params(prefill)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, CommandName(editor))
	}
	return params, nil
}

// vimString escapes s for the inside of a Vim double-quoted string.
func vimString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CommandName extracts the executable's base name from an editor setting,
// e.g. "nvim -u init.lua" -> "nvim".
func CommandName(editor string) string {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return ""
	}

	var first string
	if editor[0] == '"' || editor[0] == '\'' {
		quote := editor[0]
		rest := editor[1:]
		if end := strings.IndexByte(rest, quote); end >= 0 {
			first = rest[:end]
		} else {
			first = rest
		}
	} else {
		first = strings.Fields(editor)[0]
	}
	return filepath.Base(first)
}

// Command turns an editor setting plus arguments into a program name and
// argv. Settings with spaces ("open -a Cursor", "nvim -u x") run via sh -c
// with every argument single-quoted.
func Command(editor string, args ...string) (string, []string) {
	editor = strings.TrimSpace(editor)
	if !strings.ContainsAny(editor, " \t") {
		return editor, args
	}

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, editor)
	for _, a := range args {
		parts = append(parts, Quote(a))
	}
	return "sh", []string{"-c", strings.Join(parts, " ")}
}

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
