package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/scribemd/scribemd-go/internal/model"
	"github.com/scribemd/scribemd-go/internal/service"
	"github.com/scribemd/scribemd-go/internal/storage"
)

// DocumentHandler handles HTTP requests for listing and saving documents.
type DocumentHandler struct {
	service *service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: svc}
}

// HandleListFiles handles GET /docs/files requests.
func (h *DocumentHandler) HandleListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.ListFiles(r.Context())
	if err != nil {
		slog.Error("listing files failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}
	if files == nil {
		files = []string{}
	}

	writeJSON(w, http.StatusOK, model.FilesResponse{Files: files})
}

// HandleSave handles POST /save requests.
func (h *DocumentHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20) // 5MB

	var req model.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Corpo da requisição inválido."))
		return
	}

	resp, err := h.service.Save(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTextAndPathRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse("text and path are required"))
		case errors.Is(err, storage.ErrInvalidPath):
			writeJSON(w, http.StatusBadRequest, errorResponse("Invalid path: must be inside docs/"))
		case errors.Is(err, storage.ErrDocumentNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(fmt.Sprintf("Arquivo não encontrado: %s", req.Path)))
		default:
			slog.Error("saving document failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
