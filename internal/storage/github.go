package storage

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
)

// GitHubStore persists documents as commits to a GitHub repository, under a
// fixed path prefix on a single branch. Reads return the blob sha as the
// version token; updates pass it back so the Contents API rejects stale
// writes instead of blindly overwriting.
type GitHubStore struct {
	client *github.Client
	owner  string
	repo   string
	branch string
	prefix string
	namer  *FileNamer
}

// NewGitHubStore creates a GitHubStore authenticated with the given token.
func NewGitHubStore(token, owner, repo, branch, prefix string) *GitHubStore {
	return &GitHubStore{
		client: github.NewClient(nil).WithAuthToken(token),
		owner:  owner,
		repo:   repo,
		branch: branch,
		prefix: strings.Trim(prefix, "/"),
		namer:  &FileNamer{},
	}
}

// List walks the branch tree recursively and returns every .md blob under
// the docs prefix, relative to it, alphabetically sorted.
func (s *GitHubStore) List(ctx context.Context) ([]string, error) {
	ref, _, err := s.client.Git.GetRef(ctx, s.owner, s.repo, "heads/"+s.branch)
	if err != nil {
		return nil, fmt.Errorf("resolving branch %s: %w", s.branch, err)
	}

	tree, _, err := s.client.Git.GetTree(ctx, s.owner, s.repo, ref.GetObject().GetSHA(), true)
	if err != nil {
		return nil, fmt.Errorf("listing tree: %w", err)
	}

	var files []string
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		p := entry.GetPath()
		if !strings.HasPrefix(p, s.prefix+"/") || !strings.HasSuffix(p, ".md") {
			continue
		}
		files = append(files, strings.TrimPrefix(p, s.prefix+"/"))
	}

	sort.Strings(files)
	return files, nil
}

func (s *GitHubStore) Read(ctx context.Context, relPath string) (string, string, error) {
	fullPath := s.prefix + "/" + relPath

	file, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, fullPath,
		&github.RepositoryContentGetOptions{Ref: s.branch})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", "", ErrDocumentNotFound
		}
		return "", "", fmt.Errorf("fetching %s: %w", fullPath, err)
	}
	if file == nil {
		return "", "", fmt.Errorf("%s is not a file", fullPath)
	}

	content, err := file.GetContent()
	if err != nil {
		return "", "", fmt.Errorf("decoding %s: %w", fullPath, err)
	}

	return content, file.GetSHA(), nil
}

func (s *GitHubStore) Write(ctx context.Context, relPath, content string, mode Mode, version string) (string, error) {
	if mode == ModeAppend {
		return s.append(ctx, relPath, content, version)
	}
	return s.create(ctx, relPath, content)
}

func (s *GitHubStore) create(ctx context.Context, relDir, content string) (string, error) {
	newPath := relDir + "/" + s.namer.Next(time.Now())
	fullPath := s.prefix + "/" + newPath

	resp, _, err := s.client.Repositories.CreateFile(ctx, s.owner, s.repo, fullPath,
		&github.RepositoryContentFileOptions{
			Message: github.String("docs: adiciona " + newPath),
			Content: []byte(content),
			Branch:  github.String(s.branch),
		})
	if err != nil {
		return "", fmt.Errorf("committing %s: %w", fullPath, err)
	}

	if p := resp.GetContent().GetPath(); p != "" {
		return strings.TrimPrefix(p, s.prefix+"/"), nil
	}
	return newPath, nil
}

func (s *GitHubStore) append(ctx context.Context, relPath, content, version string) (string, error) {
	existing, sha, err := s.Read(ctx, relPath)
	if err != nil {
		return "", err
	}
	if version != "" {
		sha = version
	}

	fullPath := s.prefix + "/" + relPath
	updated := existing + AppendSeparator + content

	_, _, err = s.client.Repositories.UpdateFile(ctx, s.owner, s.repo, fullPath,
		&github.RepositoryContentFileOptions{
			Message: github.String("docs: atualiza " + relPath),
			Content: []byte(updated),
			Branch:  github.String(s.branch),
			SHA:     github.String(sha),
		})
	if err != nil {
		return "", fmt.Errorf("committing %s: %w", fullPath, err)
	}

	return relPath, nil
}
