package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "#A78BFA"

var (
	accentColor = defaultAccent

	// Accent highlights paths and notebook titles.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted is for hints and secondary details.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	Bold = lipgloss.NewStyle().Bold(true)
)

// ConfigureTheme sets the accent colour. "none", "off" and "default" turn the
// accent off; anything unparseable leaves the built-in colour in place.
func ConfigureTheme(accent string) {
	switch strings.ToLower(strings.TrimSpace(accent)) {
	case "":
		return
	case "none", "off", "default":
		accentColor = ""
		Accent = lipgloss.NewStyle()
		return
	}
	if color, ok := normalizeAccentColor(accent); ok {
		accentColor = color
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
}

// AccentColor returns the configured accent, false when disabled.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// normalizeAccentColor accepts an ANSI 256 index or a #rgb / #rrggbb hex.
func normalizeAccentColor(value string) (string, bool) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(value, "#") {
		hex := strings.ToLower(value[1:])
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		switch len(hex) {
		case 3:
			return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
		case 6:
			return "#" + hex, true
		}
		return "", false
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return strconv.Itoa(n), true
}
