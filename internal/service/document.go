package service

import (
	"context"
	"errors"

	"github.com/scribemd/scribemd-go/internal/model"
	"github.com/scribemd/scribemd-go/internal/storage"
)

var ErrTextAndPathRequired = errors.New("text and path are required")

// DocumentService persists digitized Markdown through the injected
// DocumentStore, whichever backend was selected at startup.
type DocumentService struct {
	store storage.DocumentStore
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store storage.DocumentStore) *DocumentService {
	return &DocumentService{store: store}
}

// ListFiles returns the relative paths of all stored documents, sorted.
func (s *DocumentService) ListFiles(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// Save persists text at the requested path. Any mode other than "append" is
// treated as create, matching the default.
func (s *DocumentService) Save(ctx context.Context, req model.SaveRequest) (model.SaveResponse, error) {
	if req.Text == "" || req.Path == "" {
		return model.SaveResponse{}, ErrTextAndPathRequired
	}

	sanitized, err := storage.SanitizePath(req.Path)
	if err != nil {
		return model.SaveResponse{}, err
	}

	mode := storage.ModeCreate
	message := "Arquivo salvo com sucesso!"
	if req.Mode == string(storage.ModeAppend) {
		mode = storage.ModeAppend
		message = "Texto anexado com sucesso!"
	}

	filePath, err := s.store.Write(ctx, sanitized, req.Text, mode, "")
	if err != nil {
		return model.SaveResponse{}, err
	}

	return model.SaveResponse{
		Message:  message,
		FilePath: filePath,
	}, nil
}
