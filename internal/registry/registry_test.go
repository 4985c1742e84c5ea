package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMoveToFront(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		dir     string
		want    []string
	}{
		{name: "empty", entries: nil, dir: "/a", want: []string{"/a"}},
		{name: "new head", entries: []string{"/a", "/b"}, dir: "/c", want: []string{"/c", "/a", "/b"}},
		{name: "existing moves", entries: []string{"/a", "/b", "/c"}, dir: "/b", want: []string{"/b", "/a", "/c"}},
		{name: "already head", entries: []string{"/a", "/b"}, dir: "/a", want: []string{"/a", "/b"}},
		{name: "duplicates collapse", entries: []string{"/a", "/b", "/a", "/b"}, dir: "/c", want: []string{"/c", "/a", "/b"}},
		{name: "prefix is not equal", entries: []string{"/notes/work"}, dir: "/notes", want: []string{"/notes", "/notes/work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveToFront(tt.entries, tt.dir)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("MoveToFront = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingFile(t *testing.T) {
	r := Open(filepath.Join(t.TempDir(), ".notebooks"))

	entries, err := r.Entries()
	if err != nil || len(entries) != 0 {
		t.Fatalf("Entries = %v, %v; want empty", entries, err)
	}
	if _, err := r.Current(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestSelectRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".notebooks")
	if err := os.WriteFile(path, []byte("/notes/a\n\n/notes/b\n/notes/c\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	r := Open(path)

	if err := r.Select("/notes/c"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := r.Select("/notes/d"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := r.Select("/notes/c"); err != nil {
		t.Fatalf("Select: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "/notes/c\n/notes/d\n/notes/a\n/notes/b\n"
	if string(data) != want {
		t.Fatalf("registry = %q, want %q", data, want)
	}

	current, err := r.Current()
	if err != nil || current != "/notes/c" {
		t.Fatalf("Current = %q, %v", current, err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode preserved, got %v", st.Mode().Perm())
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}
}

func TestSelectCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", ".notebooks")
	r := Open(path)

	if err := r.Select("  /notes/a  "); err != nil {
		t.Fatalf("Select: %v", err)
	}
	entries, err := r.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(entries, []string{"/notes/a"}) {
		t.Fatalf("Entries = %v", entries)
	}

	if err := r.Select(" "); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".notebooks")
	r := Open(path)
	for _, d := range []string{"/a", "/b", "/c"} {
		if err := r.Select(d); err != nil {
			t.Fatal(err)
		}
	}

	if err := r.Remove("/b"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := r.Remove("/missing"); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}

	entries, _ := r.Entries()
	if !reflect.DeepEqual(entries, []string{"/c", "/a"}) {
		t.Fatalf("Entries = %v", entries)
	}
}
