package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notebook/internal/config"
	"github.com/aidanlsb/notebook/internal/program"
)

var testNow = time.Date(2024, 5, 22, 14, 30, 15, 0, time.UTC)

type harness struct {
	t       *testing.T
	cfg     *config.Config
	rec     *program.Recorder
	stdin   io.Reader
	piped   bool
	copied  []string
	clipErr error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Editor = "vim"
	cfg.Reveal = "xdg-open"
	cfg.NotesDir = t.TempDir()
	cfg.RegistryFile = filepath.Join(t.TempDir(), "notebooks")
	return &harness{t: t, cfg: cfg, rec: &program.Recorder{}}
}

func (h *harness) env() Env {
	return Env{
		Config:          h.cfg,
		Runner:          h.rec,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stdin:           h.stdin,
		StdinIsTerminal: func() bool { return !h.piped },
		Stderr:          io.Discard,
		Now:             func() time.Time { return testNow },
		Clipboard: func(s string) error {
			h.copied = append(h.copied, s)
			return h.clipErr
		},
	}
}

// run executes a fresh notebook command tree.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	return execCmd(NewNotebookCmd(h.env()), args...)
}

func execCmd(root *cobra.Command, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// failReader fails the test if anything reads from it.
type failReader struct{ t *testing.T }

func (r failReader) Read([]byte) (int, error) {
	r.t.Error("stdin should not be read")
	return 0, errors.New("unexpected read")
}

func TestCommandTree(t *testing.T) {
	root := NewNotebookCmd(Env{})
	want := []string{"bind", "books", "create", "export", "list", "note", "open", "path", "show", "use", "version"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("expected subcommand %q", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil || root.PersistentFlags().Lookup("verbose") == nil {
		t.Fatal("expected --config and --verbose persistent flags")
	}
}

func TestVersion(t *testing.T) {
	out, err := execCmd(NewNotebookCmd(Env{Stderr: io.Discard}), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "notebook ") || !strings.Contains(out, "module: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestNormalizeVersion(t *testing.T) {
	for in, want := range map[string]string{"": "devel", "(devel)": "devel", "v1.2.3": "1.2.3"} {
		if got := normalizeVersion(in); got != want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	root := NewNotebookCmd(Env{Stderr: io.Discard})
	_, err := execCmd(root, "--config", filepath.Join(t.TempDir(), "missing.toml"), "books")
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Fatalf("expected config load error, got %v", err)
	}
}

func TestDateFlag(t *testing.T) {
	var f dateFlag
	if err := f.Set("Today"); err != nil {
		t.Fatal(err)
	}
	if f.String() != "today" || f.Type() != "DATE" {
		t.Fatalf("unexpected flag state %q %q", f.String(), f.Type())
	}
	if err := f.Set("fortnight"); err == nil {
		t.Fatal("expected unknown keyword to be rejected")
	}
}
