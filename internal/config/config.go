// Package config handles notebook configuration.
//
// Settings are resolved once at startup, in increasing precedence:
// built-in defaults, ~/.config/notebook/config.toml, a .env file next to it,
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"github.com/aidanlsb/notebook/internal/dates"
)

// Environment variable names.
const (
	EnvEditor       = "EDITOR"
	EnvPager        = "PAGER"
	EnvNotes        = "NOTES"
	EnvNotebook     = "NOTEBOOK" // legacy alias for NOTES
	EnvDailyNotes   = "DAILY_NOTES"
	EnvRegistryFile = "NOTEBOOK_REGISTRY"
)

// Config represents the resolved notebook configuration.
type Config struct {
	// Editor is the preferred editor (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// Pager shows single files (defaults to $PAGER, then less).
	Pager string `toml:"pager"`

	// Reveal opens a directory in the file manager.
	Reveal string `toml:"reveal"`

	// Converter turns markdown into other formats.
	Converter string `toml:"converter"`

	// ExportFormat is the extension bind/export produce by default.
	ExportFormat string `toml:"export_format"`

	// NotesDir is the default notes directory ($NOTES).
	NotesDir string `toml:"notes_dir"`

	// DailyDir holds dated notes ($DAILY_NOTES); falls back to NotesDir.
	DailyDir string `toml:"daily_dir"`

	// RegistryFile lists known books, most recently selected first.
	RegistryFile string `toml:"registry_file"`

	// Dates switches groups of date keywords.
	Dates dates.Features `toml:"dates"`

	// Frontmatter adds a YAML header to prefilled notes.
	Frontmatter bool `toml:"frontmatter"`

	// Accent is the highlight colour: an ANSI index, a hex value, or "none".
	Accent string `toml:"accent"`

	// Source is the config file that was read, empty if none.
	Source string `toml:"-"`
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pager:        "less",
		Reveal:       defaultReveal(),
		Converter:    "pandoc",
		ExportFormat: ".pdf",
		RegistryFile: DefaultRegistryPath(),
		Dates:        dates.DefaultFeatures(),
	}
}

func defaultReveal() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// Load reads configuration from path (DefaultPath when empty) and overlays
// the process environment.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(path string, lookup LookupFunc) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.Source = path
	} else if explicit {
		return nil, fmt.Errorf("config not found: %s", path)
	}

	dotenv, err := readDotenv(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

func (c *Config) applyEnv(lookup LookupFunc) {
	set := func(dst *string, keys ...string) {
		for _, key := range keys {
			if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
				*dst = strings.TrimSpace(v)
				return
			}
		}
	}
	set(&c.Editor, EnvEditor)
	set(&c.Pager, EnvPager)
	set(&c.NotesDir, EnvNotes, EnvNotebook)
	set(&c.DailyDir, EnvDailyNotes)
	set(&c.RegistryFile, EnvRegistryFile)
}

func (c *Config) expandPaths() {
	c.NotesDir = ExpandHome(c.NotesDir)
	c.DailyDir = ExpandHome(c.DailyDir)
	c.RegistryFile = ExpandHome(c.RegistryFile)
}

var extRegex = regexp.MustCompile(`^\.?[A-Za-z0-9]+$`)

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Converter, validation.Required),
		validation.Field(&c.ExportFormat, validation.Required, validation.Match(extRegex)),
		validation.Field(&c.RegistryFile, validation.Required),
	)
}

// DirectoryFor returns where a note belongs: the daily directory for dated
// notes (falling back to the notes directory), the notes directory otherwise.
// Empty means no directory is configured.
func (c *Config) DirectoryFor(dated bool) string {
	if dated && c.DailyDir != "" {
		return c.DailyDir
	}
	return c.NotesDir
}

// DefaultPath returns ~/.config/notebook/config.toml, or the OS config dir
// equivalent.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "notebook", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "notebook", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// DefaultRegistryPath returns ~/.notebooks.
func DefaultRegistryPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".notebooks")
	}
	return ".notebooks"
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
