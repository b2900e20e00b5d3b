package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"
)

// Mode selects the write behavior of a DocumentStore.
type Mode string

const (
	// ModeCreate writes a new timestamped file under the given directory.
	ModeCreate Mode = "create"
	// ModeAppend concatenates onto an existing file; the target must exist.
	ModeAppend Mode = "append"
)

// AppendSeparator is inserted between the existing content and newly
// appended text.
const AppendSeparator = "\n\n---\n\n"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidPath      = errors.New("invalid document path")
)

// DocumentStore is the create-or-append persistence contract for digitized
// notes. Two implementations exist: a GitHub-backed store that commits files
// to a repository, and a local filesystem store. The backend is chosen once
// at startup and injected into the handlers.
//
// All paths are relative to the store's document root and must already be
// sanitized with SanitizePath.
type DocumentStore interface {
	// List returns the relative paths of all Markdown documents under the
	// root, alphabetically sorted.
	List(ctx context.Context) ([]string, error)

	// Read returns a document's content together with an opaque version
	// token. The token is required by the GitHub store for safe updates;
	// the local store returns an empty token.
	Read(ctx context.Context, relPath string) (content string, version string, err error)

	// Write persists content and returns the final relative path.
	//
	// In ModeCreate, relPath names a directory and a new timestamped file
	// is placed inside it. In ModeAppend, relPath names an existing file;
	// ErrDocumentNotFound is returned when the target is absent. A version
	// token from a prior Read may be passed to detect concurrent updates
	// on the GitHub store; when empty, the store reads the current version
	// itself.
	Write(ctx context.Context, relPath, content string, mode Mode, version string) (string, error)
}

// SanitizePath normalizes a client-supplied document path: every ".."
// substring and leading slash is stripped, the result is cleaned, and
// anything that still escapes the root is rejected with ErrInvalidPath.
func SanitizePath(p string) (string, error) {
	s := strings.ReplaceAll(p, "..", "")
	s = strings.TrimLeft(s, "/")
	s = path.Clean(s)

	if s == "" || s == "." || s == "/" {
		return "", ErrInvalidPath
	}
	if path.IsAbs(s) || s == ".." || strings.HasPrefix(s, "../") {
		return "", ErrInvalidPath
	}

	return s, nil
}

// FileNamer synthesizes timestamped note filenames. Two names generated
// within the same second get a monotonic numeric suffix so that rapid
// successive saves never collide.
type FileNamer struct {
	mu    sync.Mutex
	last  string
	count int
}

// Next returns a fresh filename of the form note-2006-01-02T15-04-05.md,
// or note-...-N.md when the second is already taken.
func (n *FileNamer) Next(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15-04-05")

	n.mu.Lock()
	defer n.mu.Unlock()

	if stamp == n.last {
		n.count++
		return fmt.Sprintf("note-%s-%d.md", stamp, n.count)
	}

	n.last = stamp
	n.count = 1
	return fmt.Sprintf("note-%s.md", stamp)
}
