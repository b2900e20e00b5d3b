package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() unexpected error: %v", err)
	}
	return store
}

func TestLocalCreateListRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	filePath, err := store.Write(ctx, "Math/Algebra", "# Nota", ModeCreate, "")
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	pattern := regexp.MustCompile(`^Math/Algebra/note-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}(-\d+)?\.md$`)
	if !pattern.MatchString(filePath) {
		t.Fatalf("Write() filePath = %q, does not match note-<timestamp>.md pattern", filePath)
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != filePath {
		t.Errorf("List() = %v, want [%s]", files, filePath)
	}

	content, version, err := store.Read(ctx, filePath)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	if content != "# Nota" {
		t.Errorf("Read() content = %q, want %q", content, "# Nota")
	}
	if version != "" {
		t.Errorf("Read() version = %q, want empty for local store", version)
	}
}

func TestLocalListSortedAndMarkdownOnly(t *testing.T) {
	store := newTestStore(t)

	for _, p := range []string{"b/two.md", "a/one.md", "c/skip.txt"} {
		full := filepath.Join(store.root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	want := []string{"a/one.md", "b/two.md"}
	if len(files) != 2 || files[0] != want[0] || files[1] != want[1] {
		t.Errorf("List() = %v, want %v", files, want)
	}
	if !sort.StringsAreSorted(files) {
		t.Errorf("List() = %v, not sorted", files)
	}
}

func TestLocalListMissingRoot(t *testing.T) {
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("NewLocalStore() unexpected error: %v", err)
	}

	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("List() = %v, want empty for missing root", files)
	}
}

func TestLocalAppend(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	filePath, err := store.Write(ctx, "Math", "first", ModeCreate, "")
	if err != nil {
		t.Fatalf("Write(create) unexpected error: %v", err)
	}

	got, err := store.Write(ctx, filePath, "second", ModeAppend, "")
	if err != nil {
		t.Fatalf("Write(append) unexpected error: %v", err)
	}
	if got != filePath {
		t.Errorf("Write(append) = %q, want %q", got, filePath)
	}

	content, _, err := store.Read(ctx, filePath)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	want := "first" + AppendSeparator + "second"
	if content != want {
		t.Errorf("Read() = %q, want %q", content, want)
	}
}

func TestLocalAppendTwice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	filePath, err := store.Write(ctx, "notes", "c0", ModeCreate, "")
	if err != nil {
		t.Fatalf("Write(create) unexpected error: %v", err)
	}
	if _, err := store.Write(ctx, filePath, "c1", ModeAppend, ""); err != nil {
		t.Fatalf("Write(append) unexpected error: %v", err)
	}
	if _, err := store.Write(ctx, filePath, "c2", ModeAppend, ""); err != nil {
		t.Fatalf("Write(append) unexpected error: %v", err)
	}

	content, _, err := store.Read(ctx, filePath)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	want := "c0" + AppendSeparator + "c1" + AppendSeparator + "c2"
	if content != want {
		t.Errorf("Read() = %q, want %q", content, want)
	}
}

func TestLocalAppendMissingTarget(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Write(context.Background(), "missing/note.md", "text", ModeAppend, "")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Write(append) error = %v, want ErrDocumentNotFound", err)
	}
}

func TestLocalReadMissing(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Read(context.Background(), "nope.md")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Read() error = %v, want ErrDocumentNotFound", err)
	}
}

func TestLocalContainment(t *testing.T) {
	store := newTestStore(t)

	// Paths are sanitized at the boundary; the store still refuses anything
	// that resolves outside its root.
	_, err := store.Write(context.Background(), "../outside", "text", ModeCreate, "")
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Write() error = %v, want ErrInvalidPath for escaping path", err)
	}
}

func TestLocalRapidCreatesDoNotCollide(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		p, err := store.Write(ctx, "burst", "x", ModeCreate, "")
		if err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}
		if seen[p] {
			t.Fatalf("Write() reused path %q", p)
		}
		seen[p] = true
	}
}
