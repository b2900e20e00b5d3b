package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LocalStore persists documents directly under a root directory on the
// server's filesystem. It is the development fallback used when no GitHub
// token is configured. Concurrent appends to the same file are not
// serialized; last write wins.
type LocalStore struct {
	root  string
	namer *FileNamer
}

// NewLocalStore creates a LocalStore rooted at the given directory. The
// root is resolved to an absolute path once so that containment checks are
// stable regardless of the working directory.
func NewLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving docs dir: %w", err)
	}
	return &LocalStore{root: abs, namer: &FileNamer{}}, nil
}

func (s *LocalStore) List(ctx context.Context) ([]string, error) {
	var files []string

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing docs: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

func (s *LocalStore) Read(ctx context.Context, relPath string) (string, string, error) {
	target, err := s.resolve(relPath)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", ErrDocumentNotFound
		}
		return "", "", fmt.Errorf("reading %s: %w", relPath, err)
	}

	return string(data), "", nil
}

func (s *LocalStore) Write(ctx context.Context, relPath, content string, mode Mode, version string) (string, error) {
	if mode == ModeAppend {
		return s.append(relPath, content)
	}
	return s.create(relPath, content)
}

func (s *LocalStore) create(relDir, content string) (string, error) {
	dir, err := s.resolve(relDir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", relDir, err)
	}

	name := s.namer.Next(time.Now())
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return relDir + "/" + name, nil
}

func (s *LocalStore) append(relPath, content string) (string, error) {
	target, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}

	existing, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrDocumentNotFound
		}
		return "", fmt.Errorf("reading %s: %w", relPath, err)
	}

	updated := string(existing) + AppendSeparator + content
	if err := os.WriteFile(target, []byte(updated), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", relPath, err)
	}

	return relPath, nil
}

// resolve joins a relative path onto the root and verifies that the result
// stays inside it. Paths are sanitized at the HTTP boundary already; this
// re-checks containment on the final absolute path.
func (s *LocalStore) resolve(relPath string) (string, error) {
	target := filepath.Join(s.root, filepath.FromSlash(relPath))

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", ErrInvalidPath
	}
	if abs != s.root && !strings.HasPrefix(abs, s.root+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}

	return abs, nil
}
